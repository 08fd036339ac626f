package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// frame is one entry on the indentation stack used while parsing.
// kind is one of "game", "engine", "puzzles", "diff", "config", or
// "block" (a nested property group such as size: or mines:); name
// carries the dotted prefix for "block" frames.
type frame struct {
	indent int
	kind   string
	name   string
}

// parseFile implements the external parser contract described in the
// spec: comments and blank lines are ignored, indentation defines
// nesting, and keys outside the recognized shape are stored as
// "parent.child" properties on the enclosing difficulty.
//
// Recognized shape:
//
//	game:
//	  <engine>:
//	    output: <path>
//	    append: true|false
//	    puzzles:
//	      <difficulty>:
//	        count: <int>
//	        size:
//	          columns: <int>
//	          rows: <int>
//	        mines:
//	          minimum: <int>
//	          maximum: <int>
//	        tags: <string>
//	        max_time: <int>
//	  config:
//	    threads: <int>
func parseFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg := &Config{}
	var stack []frame
	var curEngine *EngineConfig
	var curDiff *Difficulty

	flushDiff := func() {
		if curEngine != nil && curDiff != nil {
			curEngine.Difficulties = append(curEngine.Difficulties, *curDiff)
		}
		curDiff = nil
	}
	flushEngine := func() {
		flushDiff()
		if curEngine != nil {
			cfg.Games = append(cfg.Games, *curEngine)
		}
		curEngine = nil
	}
	pop := func(fr frame) {
		switch fr.kind {
		case "engine":
			flushEngine()
		case "diff":
			flushDiff()
		}
	}

	scan := bufio.NewScanner(f)
	for scan.Scan() {
		raw := scan.Text()
		indent := 0
		for indent < len(raw) && raw[indent] == ' ' {
			indent++
		}
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		colon := strings.Index(line, ":")
		if colon < 0 {
			continue
		}
		key := strings.TrimSpace(line[:colon])
		value := unquote(strings.TrimSpace(line[colon+1:]))

		for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
			pop(stack[len(stack)-1])
			stack = stack[:len(stack)-1]
		}

		var top *frame
		if len(stack) > 0 {
			top = &stack[len(stack)-1]
		}

		switch {
		case top == nil && key == "game" && value == "":
			stack = append(stack, frame{indent: indent, kind: "game"})

		case top == nil && key == "config" && value == "":
			stack = append(stack, frame{indent: indent, kind: "config"})

		case top != nil && top.kind == "config" && key == "threads":
			if n, err := strconv.Atoi(value); err == nil {
				cfg.Threads = n
			}

		case top != nil && top.kind == "game" && key == "config" && value == "":
			// config: nests under game: in the recognized shape
			// (sibling of each <engine_name>: block).
			stack = append(stack, frame{indent: indent, kind: "config"})

		case top != nil && top.kind == "game" && value == "":
			flushEngine()
			curEngine = &EngineConfig{Name: key}
			stack = append(stack, frame{indent: indent, kind: "engine"})

		case top != nil && top.kind == "engine" && key == "output":
			curEngine.Output = value

		case top != nil && top.kind == "engine" && key == "append":
			curEngine.Append = value == "true"

		case top != nil && top.kind == "engine" && key == "puzzles" && value == "":
			stack = append(stack, frame{indent: indent, kind: "puzzles"})

		case top != nil && top.kind == "puzzles" && value == "":
			flushDiff()
			curDiff = &Difficulty{Name: key, Properties: map[string]string{}}
			stack = append(stack, frame{indent: indent, kind: "diff"})

		case top != nil && top.kind == "diff" && key == "count":
			if n, err := strconv.Atoi(value); err == nil {
				curDiff.Count = n
			}

		case top != nil && top.kind == "diff" && value == "":
			// Nested block start (size:, mines:, or an unrecognized
			// group) — leaves flatten to "<key>.<child>", except
			// "size" which flattens to the bare child name per
			// spec §3 (columns/rows, not size.columns).
			stack = append(stack, frame{indent: indent, kind: "block", name: key})

		case top != nil && top.kind == "diff":
			curDiff.Properties[key] = value

		case top != nil && top.kind == "block" && value == "":
			prefix := key
			if top.name != "size" {
				prefix = top.name + "." + key
			}
			stack = append(stack, frame{indent: indent, kind: "block", name: prefix})

		case top != nil && top.kind == "block":
			if curDiff == nil {
				continue
			}
			if top.name == "size" {
				curDiff.Properties[key] = value
			} else {
				curDiff.Properties[top.name+"."+key] = value
			}
		}
	}

	for len(stack) > 0 {
		pop(stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}

	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}
