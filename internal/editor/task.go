package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"

	"github.com/amonks/ktra/internal/validation"
	"github.com/amonks/ktra/task"
)

// TaskData represents the data used to render the TOML template.
type TaskData struct {
	// ID is the task ID, shown as a comment.
	ID string
	// Title is the task title.
	Title string
	// Points is the point estimate.
	Points int
	// Status is the lifecycle status.
	Status string
}

// DataFromTask creates TaskData from an existing task for editing.
func DataFromTask(t *task.Task) TaskData {
	return TaskData{
		ID:     t.ID,
		Title:  t.Title,
		Points: int(t.Points),
		Status: string(t.Status),
	}
}

var taskTemplate = template.Must(template.New("task").Funcs(template.FuncMap{
	"points":   func() string { return validation.FormatValidValues(task.ValidPoints()) },
	"statuses": func() string { return validation.FormatValidValues(task.ValidStatuses()) },
}).Parse(`# task {{ .ID }}
title = {{ printf "%q" .Title }}
points = {{ .Points }} # {{ points }}
status = {{ printf "%q" .Status }} # {{ statuses }}
`))

// RenderTaskTOML renders the task data as a TOML string for editing.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTask represents the parsed result from the TOML editor output.
type ParsedTask struct {
	Title  string `toml:"title"`
	Points int    `toml:"points"`
	Status string `toml:"status"`
}

// ParseTaskTOML parses the TOML content from the editor.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	var parsed ParsedTask
	if _, err := toml.Decode(content, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Title = task.NormalizeTitle(parsed.Title)

	// Validate required fields
	if err := task.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	if err := task.ValidatePoints(task.Points(parsed.Points)); err != nil {
		return nil, err
	}
	status, err := task.ParseStatus(parsed.Status)
	if err != nil {
		return nil, err
	}
	parsed.Status = string(status)

	return &parsed, nil
}

func createTaskTempFile() (*os.File, error) {
	return os.CreateTemp("", "ktra-task-*.toml")
}

// EditTask opens the editor on existing and returns the parsed result.
func EditTask(existing *task.Task) (*ParsedTask, error) {
	content, err := RenderTaskTOML(DataFromTask(existing))
	if err != nil {
		return nil, err
	}

	tmpfile, err := createTaskTempFile()
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}
	if strings.TrimSpace(string(edited)) == "" {
		return nil, fmt.Errorf("edited file is empty")
	}

	return ParseTaskTOML(string(edited))
}

// ToUpdateOptions converts a ParsedTask to task.UpdateOptions.
func (p *ParsedTask) ToUpdateOptions() task.UpdateOptions {
	title := p.Title
	points := task.Points(p.Points)
	return task.UpdateOptions{
		Title:  &title,
		Points: &points,
	}
}

// StatusValue returns the parsed status.
func (p *ParsedTask) StatusValue() task.Status {
	return task.Status(p.Status)
}
