package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulesPrefix = "focustracker/internal/modules/"

type goImport struct {
	file string
	path string
}

// walkImports yields the module imports of every non-test Go file under root.
func walkImports(t *testing.T, root string, fn func(goImport)) {
	t.Helper()
	fset := token.NewFileSet()
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if strings.HasPrefix(importPath, modulesPrefix) {
				fn(goImport{file: filepath.ToSlash(path), path: importPath})
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
}

func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "modules"), func(imp goImport) {
		module := moduleName(imp.file)
		layer := detectLayer(imp.file)
		if module == "" || layer == "" {
			return
		}
		if violatesLayerRule(module, layer, imp.path) {
			t.Errorf("forbidden import in %s (%s): %s", imp.file, layer, imp.path)
		}
	})
}

func TestUIImportsOnlyDTOs(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "ui"), func(imp goImport) {
		if !isDTO(imp.path) {
			t.Errorf("ui file %s imports %s; only module dto packages are allowed", imp.file, imp.path)
		}
	})
}

func moduleName(path string) string {
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" {
			return parts[i+1]
		}
	}
	return ""
}

func detectLayer(path string) string {
	for _, layer := range []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"} {
		if strings.Contains(path, "/"+layer+"/") {
			return layer
		}
	}
	return ""
}

func isPortIn(path string) bool {
	return strings.Contains(path, "/port/in/") || strings.HasSuffix(path, "/port/in")
}

func isDTO(path string) bool {
	return strings.Contains(path, "/dto/") || strings.HasSuffix(path, "/dto")
}

func violatesLayerRule(module, layer, importPath string) bool {
	if !strings.HasPrefix(importPath, modulesPrefix+module+"/") {
		// another module is reachable only through its inbound port, and
		// only from outbound adapters bridging to it
		if !isPortIn(importPath) && !isDTO(importPath) {
			return true
		}
		return layer != "adapter/out"
	}

	switch layer {
	case "adapter/in":
		return !isPortIn(importPath) && !isDTO(importPath)
	case "usecase":
		return strings.Contains(importPath, "/adapter/")
	case "service":
		return strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase/")
	case "domain":
		return strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase/") || strings.Contains(importPath, "/service/")
	case "dto", "port/in":
		return !isDTO(importPath)
	default:
		return false
	}
}

func TestViolatesLayerRule(t *testing.T) {
	t.Parallel()
	cases := []struct {
		module, layer, imp string
		want               bool
	}{
		{"analytics", "adapter/out", modulesPrefix + "tracker/port/in", false},
		{"analytics", "adapter/out", modulesPrefix + "tracker/domain", true},
		{"analytics", "service", modulesPrefix + "tracker/port/in", true},
		{"tracker", "adapter/in", modulesPrefix + "tracker/domain", true},
		{"tracker", "usecase", modulesPrefix + "tracker/adapter/out", true},
		{"tracker", "adapter/out", modulesPrefix + "tracker/domain", false},
		{"tracker", "port/in", modulesPrefix + "tracker/dto", false},
		{"tracker", "port/in", modulesPrefix + "tracker/domain", true},
	}
	for _, tc := range cases {
		if got := violatesLayerRule(tc.module, tc.layer, tc.imp); got != tc.want {
			t.Fatalf("violatesLayerRule(%s, %s, %s) = %v, want %v", tc.module, tc.layer, tc.imp, got, tc.want)
		}
	}
}
