package wizard

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"
)

// DetectionResult holds what was auto-detected on the system.
type DetectionResult struct {
	KubectlAvailable bool
	DockerAvailable  bool
	GraphFiles       []string // candidate instance graph files
}

// Detector abstracts filesystem and path lookups for testing.
type Detector interface {
	LookPath(name string) (string, error)
	Stat(path string) (os.FileInfo, error)
	Glob(pattern string) ([]string, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) LookPath(name string) (string, error) { return exec.LookPath(name) }
func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }
func (OSDetector) Glob(pattern string) ([]string, error) { return filepath.Glob(pattern) }

var graphPatterns = []string{
	"graph.yaml",
	"graph.yml",
	"graph.json",
	"*.graph.yaml",
	"*.graph.yml",
	"*.graph.json",
}

// Detect scans the environment for deployment tooling and graph files.
func Detect(d Detector) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	if _, err := d.LookPath("kubectl"); err == nil {
		result.KubectlAvailable = true
	}
	if _, err := d.LookPath("docker"); err == nil {
		result.DockerAvailable = true
	}

	dirs := []string{"."}
	if info, err := d.Stat("graphs"); err == nil && info.IsDir() {
		dirs = append(dirs, "graphs")
	}

	seen := make(map[string]bool)
	for _, dir := range dirs {
		for _, pattern := range graphPatterns {
			matches, err := d.Glob(filepath.Join(dir, pattern))
			if err != nil {
				continue
			}
			sort.Strings(matches)
			for _, m := range matches {
				if seen[m] {
					continue
				}
				seen[m] = true
				result.GraphFiles = append(result.GraphFiles, m)
			}
		}
	}

	return result
}
