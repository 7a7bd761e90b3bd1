package detect

import "codeinv/pkg/inventory"

const (
	packageJSON  = "package.json"
	tsconfigJSON = "tsconfig.json"
)

// NodeDetector detects Node.js and JavaScript/TypeScript projects. The
// package.json manifest is required; a tsconfig.json alongside it upgrades
// the language to TypeScript.
type NodeDetector struct{}

// NewNodeDetector creates a node detector.
func NewNodeDetector() *NodeDetector {
	return &NodeDetector{}
}

// Name implements Detector.
func (d *NodeDetector) Name() string { return "node" }

// Detect implements Detector.
func (d *NodeDetector) Detect(dir string) (*inventory.DetectionResult, error) {
	hasManifest, err := fileExists(dir, packageJSON)
	if err != nil {
		return nil, err
	}
	if !hasManifest {
		return nil, nil
	}

	hasTypescript, err := fileExists(dir, tsconfigJSON)
	if err != nil {
		return nil, err
	}

	keywords := []string{"node", "javascript"}
	language := "JavaScript"
	if hasTypescript {
		keywords = append(keywords, "typescript")
		language = "TypeScript"
	}

	return &inventory.DetectionResult{
		ProjectType:     "Web App",
		PrimaryLanguage: language,
		Keywords:        keywords,
		Source:          "node-markers",
	}, nil
}
