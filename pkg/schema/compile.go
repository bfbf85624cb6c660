package schema

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/snowdiff/pkg/consts"
	"github.com/pseudomuto/snowdiff/pkg/parser"
)

// Compile recursively compiles a SQL file and its imports. It processes import directives (lines
// starting with "-- snowdiff:import") and includes the referenced files' contents in the output.
// Import paths are resolved relative to the current file's directory. A file that imports itself,
// directly or through other files, is an error.
//
// Example:
//
//	var buf bytes.Buffer
//	err := schema.Compile("ddl/main.sql", &buf)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	s, err := schema.Extract(buf.String())
func Compile(path string, w io.Writer) error {
	return compile(path, w, nil)
}

func compile(path string, w io.Writer, stack []string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve %s", path)
	}

	for _, seen := range stack {
		if seen == abs {
			return errors.Errorf("import cycle: %s", strings.Join(append(stack, abs), " -> "))
		}
	}
	stack = append(stack, abs)

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file %s", path)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, consts.ImportDirective) {
			importPath := strings.TrimSpace(strings.TrimPrefix(line, consts.ImportDirective))
			if importPath == "" {
				return errors.Errorf("empty import directive in %s", path)
			}

			if !filepath.IsAbs(importPath) {
				importPath = filepath.Join(filepath.Dir(path), importPath)
			}

			if err := compile(importPath, w, stack); err != nil {
				return err
			}

			continue
		}

		fmt.Fprintln(w, line)
	}

	return errors.Wrapf(scanner.Err(), "failed scanning %s", path)
}

// Load returns the compiled SQL at path. When path is a directory, every .sql file below it is
// compiled in lexical order and the results are concatenated. A file whose last statement has no
// closing semicolon gets one, so statements never run on into the next file.
func Load(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read file %s", path)
	}

	var buf bytes.Buffer
	if !info.IsDir() {
		if err := Compile(path, &buf); err != nil {
			return "", err
		}

		return buf.String(), nil
	}

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || filepath.Ext(p) != ".sql" {
			return nil
		}

		var file bytes.Buffer
		if err := Compile(p, &file); err != nil {
			return err
		}

		buf.Write(file.Bytes())
		if unterminated(file.String()) {
			buf.WriteString(";\n")
		}

		return nil
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to load directory %s", path)
	}

	return buf.String(), nil
}

// unterminated reports whether sql ends with a statement that has no closing semicolon. Input that
// does not tokenize is left for the parser to report.
func unterminated(sql string) bool {
	fragments, err := parser.Split(sql)
	if err != nil || len(fragments) == 0 {
		return false
	}

	return !fragments[len(fragments)-1].Blank
}
