package detect

import "codeinv/pkg/inventory"

// Python marker files checked in order.
var defaultPythonMarkers = []string{"pyproject.toml", "setup.py", "requirements.txt"}

// markerKeywords maps a found marker to its keyword tag.
var pythonMarkerKeywords = map[string]string{
	"pyproject.toml":   "pyproject",
	"setup.py":         "setuptools",
	"requirements.txt": "requirements",
}

// PythonDetector detects Python projects using common marker files. A
// conventional src/ layout classifies the project as a CLI tool, anything
// else as a script.
type PythonDetector struct {
	markers []string
}

// NewPythonDetector creates a detector with the default marker set.
func NewPythonDetector() *PythonDetector {
	return &PythonDetector{markers: defaultPythonMarkers}
}

// NewPythonDetectorWithMarkers creates a detector with a custom marker set,
// mainly for tests.
func NewPythonDetectorWithMarkers(markers []string) *PythonDetector {
	return &PythonDetector{markers: markers}
}

// Name implements Detector.
func (d *PythonDetector) Name() string { return "python" }

// Detect implements Detector.
func (d *PythonDetector) Detect(dir string) (*inventory.DetectionResult, error) {
	var found []string
	for _, marker := range d.markers {
		ok, err := fileExists(dir, marker)
		if err != nil {
			return nil, err
		}
		if ok {
			found = append(found, marker)
		}
	}
	if len(found) == 0 {
		return nil, nil
	}

	hasSrcLayout, err := dirExists(dir, "src")
	if err != nil {
		return nil, err
	}

	keywords := []string{"python"}
	for _, marker := range found {
		if tag, ok := pythonMarkerKeywords[marker]; ok {
			keywords = append(keywords, tag)
		}
	}
	if hasSrcLayout {
		keywords = append(keywords, "src-layout")
	}

	projectType := "Script"
	if hasSrcLayout {
		projectType = "CLI Tool"
	}

	return &inventory.DetectionResult{
		ProjectType:     projectType,
		PrimaryLanguage: "Python",
		Keywords:        keywords,
		Source:          "python-markers",
	}, nil
}
