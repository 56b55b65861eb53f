package report

import (
	"strconv"
	"strings"

	"go.trai.ch/recipe/internal/core/domain"
)

type row struct {
	key   string
	value string
}

func (r *Renderer) planText(entry Entry) string {
	var b strings.Builder

	header := entry.Plan.Platform.String()
	if entry.Label != "" {
		header = entry.Label + ": " + header
	}
	b.WriteString(r.title.Render(header) + "\n")

	var options []row
	for name, value := range entry.Plan.Options.All() {
		options = append(options, row{string(name), r.boolText(value, strconv.FormatBool(value))})
	}
	r.section(&b, "Options", options)

	var deps []row
	for _, dep := range entry.Plan.Dependencies {
		deps = append(deps, row{dep.Reference(), string(dep.LinkMode)})
	}
	r.section(&b, "Dependencies", deps)

	var vars []row
	for name, value := range entry.Plan.Variables.All() {
		state := "OFF"
		if value {
			state = "ON"
		}
		vars = append(vars, row{name, r.boolText(value, state)})
	}
	r.section(&b, "Toolchain variables", vars)

	return b.String()
}

func (r *Renderer) optionsText(defs []optionDoc) string {
	var b strings.Builder
	b.WriteString(r.title.Render("Options") + "\n")

	width := 0
	for _, def := range defs {
		width = max(width, len(def.Name))
	}

	for _, def := range defs {
		domainText := make([]string, len(def.Domain))
		for i, v := range def.Domain {
			domainText[i] = strconv.FormatBool(v)
		}
		b.WriteString("  " + r.key.Render(def.Name) + spaces(def.Name, width+2))
		b.WriteString(pad(strings.Join(domainText, "|"), 12))
		b.WriteString("default " + pad(strconv.FormatBool(def.Default), 7))
		b.WriteString(def.Description + "\n")
	}

	return b.String()
}

func (r *Renderer) recipeText(recipe domain.Recipe) string {
	var b strings.Builder
	b.WriteString(r.title.Render(recipe.Name+"/"+recipe.Version) + "\n")
	r.rows(&b, []row{
		{"type", string(recipe.PackageType)},
		{"license", recipe.License},
		{"author", recipe.Author},
		{"url", recipe.URL},
		{"description", recipe.Description},
		{"topics", strings.Join(recipe.Topics, ", ")},
	})
	return b.String()
}

func (r *Renderer) section(b *strings.Builder, title string, rows []row) {
	b.WriteString("\n" + r.title.Render(title) + "\n")
	if len(rows) == 0 {
		b.WriteString("  " + r.key.Render("(none)") + "\n")
		return
	}
	r.rows(b, rows)
}

func (r *Renderer) rows(b *strings.Builder, rows []row) {
	width := 0
	for _, row := range rows {
		width = max(width, len(row.key))
	}
	for _, row := range rows {
		b.WriteString("  " + r.key.Render(row.key) + spaces(row.key, width+2) + row.value + "\n")
	}
}

func (r *Renderer) boolText(value bool, text string) string {
	if value {
		return r.on.Render(text)
	}
	return r.off.Render(text)
}

// pad right-pads s to width.
func pad(s string, width int) string {
	return s + spaces(s, width)
}

// spaces returns the padding that brings s to width.
func spaces(s string, width int) string {
	if len(s) >= width {
		return ""
	}
	return strings.Repeat(" ", width-len(s))
}

