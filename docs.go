package main

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/samridhim/dfim/cmd"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootCmdHeader = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childCmdHeader = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// meta is for describing the position/info for a command doc page
type meta struct {
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"dfim": meta{
		"dfim",
		0,
		"",
	},
	"dfim_bed": meta{
		"bed",
		0,
		"dfim",
	},
	"dfim_labels": meta{
		"labels",
		1,
		"dfim",
	},
	"dfim_simdata": meta{
		"simdata",
		2,
		"dfim",
	},
	"dfim_predictions": meta{
		"predictions",
		3,
		"dfim",
	},
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs() {
	if err := doc.GenMarkdownTreeCustom(cmd.RootCmd, "./docs", filePrepender, linkHandler); err != nil {
		fmt.Println(err.Error())
	}
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m, _ := metaMap[base]

	if m.parent == "" {
		return fmt.Sprintf(rootCmdHeader, m.title, m.navOrder)
	}
	return fmt.Sprintf(childCmdHeader, m.title, m.parent, m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "dfim" {
		return "/"
	}
	return base
}
