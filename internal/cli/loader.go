package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/faultline/faultline/internal/ftree"
)

// LoadError represents an error that occurred during tree loading.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// treeDoc mirrors the CUE tree document:
//
//	tree: {
//	    name: "demo"
//	    nodes: [{id: 1, event: "top", kind: "top"}, ...]
//	    edges: [{from: 1, to: 2}, ...]
//	}
type treeDoc struct {
	Name  string       `json:"name"`
	Nodes []ftree.Node `json:"nodes"`
	Edges []ftree.Edge `json:"edges"`
}

// LoadTree loads a fault-tree definition from the CUE files in a
// directory. The tree is returned as supplied; structural validation
// belongs to the compiler boundary, not the loader.
func LoadTree(dir string) (string, *ftree.Tree, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return "", nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("tree directory not found: %s", dir)}
	}
	if err != nil {
		return "", nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing tree directory: %v", err)}
	}
	if !info.IsDir() {
		return "", nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	cueFiles, err := findCUEFiles(dir)
	if err != nil {
		return "", nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("error scanning directory: %v", err)}
	}
	if len(cueFiles) == 0 {
		return "", nil, &LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return "", nil, &LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return "", nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return "", nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}
	}

	treeVal := value.LookupPath(cue.ParsePath("tree"))
	if !treeVal.Exists() {
		return "", nil, &LoadError{Code: ErrCodeBadDocument, Message: "no 'tree' document found in CUE files"}
	}

	var doc treeDoc
	if err := treeVal.Decode(&doc); err != nil {
		return "", nil, &LoadError{Code: ErrCodeBadDocument, Message: fmt.Sprintf("decoding tree document: %v", err)}
	}
	if doc.Name == "" {
		doc.Name = filepath.Base(dir)
	}
	return doc.Name, &ftree.Tree{Nodes: doc.Nodes, Edges: doc.Edges}, nil
}

// findCUEFiles walks the directory and returns all .cue file paths.
func findCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
