package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/fwessels/cpre"
)

// main is a thin CLI collaborator around the cpre library: it does the
// actual filesystem reading/writing the library's core deliberately stays
// out of.
func main() {
	var predefines []string
	var outDir string
	var files []string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-D":
			i++
			if i >= len(args) {
				log.Fatal("Usage: preprocess [-D NAME=VALUE]... [-o DIR] file [file...]")
			}
			predefines = append(predefines, args[i])
		case "-o":
			i++
			if i >= len(args) {
				log.Fatal("Usage: preprocess [-D NAME=VALUE]... [-o DIR] file [file...]")
			}
			outDir = args[i]
		default:
			files = append(files, args[i])
		}
	}
	if len(files) == 0 {
		fmt.Println("Usage: preprocess [-D NAME=VALUE]... [-o DIR] file [file...]")
		os.Exit(1)
	}

	cfg := cpre.NewConfig()
	for _, d := range predefines {
		name, value := cpre.ParseDefine(d)
		cfg.Macros[name] = value
	}

	for _, f := range files {
		if err := loadSourceTree(cfg, f); err != nil {
			log.Fatal(err)
		}
		text, err := os.ReadFile(f)
		if err != nil {
			log.Fatal(err)
		}
		key := filepath.ToSlash(f)
		cfg.Sources[key] = string(text)
		cfg.MainSources[key] = string(text)
	}

	result, err := cpre.Run(*cfg)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range files {
		out := result.Sources[filepath.ToSlash(f)]
		if outDir == "" {
			fmt.Print(out)
			continue
		}
		dest := filepath.Join(outDir, filepath.Base(f))
		if err := os.WriteFile(dest, []byte(out), 0644); err != nil {
			log.Fatal(err)
		}
	}
}

// loadSourceTree populates cfg.Sources with every file under file's
// directory, keyed by its walked path in slash form, so that quoted #include
// directives in file resolve against its directory. An angled #include
// resolves only when it names such a key in full.
func loadSourceTree(cfg *cpre.Config, file string) error {
	dir := filepath.Dir(file)
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		cfg.Sources[filepath.ToSlash(path)] = string(data)
		return nil
	})
}
