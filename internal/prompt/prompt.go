package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vnite-labs/create-vnite-plugin/internal/plugin"
	"github.com/vnite-labs/create-vnite-plugin/internal/ui"
)

// Defaults seeds the answers offered for each question.
type Defaults struct {
	Name     string
	Author   string
	License  string
	Category plugin.Category
}

// Collector asks the plugin questions in order.
type Collector struct {
	Reader   LineReader
	Console  *ui.Console
	Defaults Defaults

	// AcceptDefaults answers every question with its default without reading
	// any input.
	AcceptDefaults bool
}

// Collect runs the questionnaire. providedName, when not empty, becomes the
// default plugin name. It returns ErrCancelled if the user aborts at any
// question or declines the final confirmation.
func (c *Collector) Collect(ctx context.Context, providedName string) (*plugin.Answers, error) {
	d := c.resolveDefaults(providedName)

	if c.AcceptDefaults {
		if err := plugin.ValidateIdentifier(d.Name); err != nil {
			return nil, err
		}
		return &plugin.Answers{
			Name:        d.Name,
			Description: plugin.DefaultDescription(d.Name),
			Author:      d.Author,
			Category:    d.Category,
			License:     d.License,
			Keywords:    plugin.Keywords(d.Category, d.Name),
			Confirm:     true,
		}, nil
	}

	c.Console.Println()
	c.Console.Headingf("Let's create your Vnite plugin!")
	c.Console.Infof("Please answer the following questions to configure your plugin:")
	c.Console.Println()

	a := &plugin.Answers{}
	var err error

	a.Name, err = c.askText(ctx,
		"Plugin name (can only contain lowercase letters, numbers, hyphens, and underscores)",
		d.Name, validateName)
	if err != nil {
		return nil, err
	}

	a.Description, err = c.askText(ctx, "Plugin description", plugin.DefaultDescription(a.Name), nil)
	if err != nil {
		return nil, err
	}

	a.Author, err = c.askText(ctx, "Author name", d.Author, nil)
	if err != nil {
		return nil, err
	}

	a.Category, err = c.askCategory(ctx, "Plugin category", d.Category)
	if err != nil {
		return nil, err
	}

	a.License, err = c.askText(ctx, "License", d.License, nil)
	if err != nil {
		return nil, err
	}

	a.Confirm, err = c.askConfirm(ctx, "Confirm plugin creation?", true)
	if err != nil {
		return nil, err
	}
	if !a.Confirm {
		return nil, ErrCancelled
	}

	a.Keywords = plugin.Keywords(a.Category, a.Name)
	return a, nil
}

func (c *Collector) resolveDefaults(providedName string) Defaults {
	d := c.Defaults
	if providedName != "" {
		d.Name = providedName
	}
	if d.Name == "" {
		d.Name = plugin.DefaultName
	}
	if d.Author == "" {
		d.Author = plugin.DefaultAuthor
	}
	if d.License == "" {
		d.License = plugin.DefaultLicense
	}
	if !d.Category.Valid() {
		d.Category = plugin.Categories[0]
	}
	return d
}

// validateName returns a message describing why value is not an acceptable
// plugin name, or "" if it is.
func validateName(value string) string {
	if value == "" {
		return "Plugin name cannot be empty"
	}
	if !plugin.IsValidIdentifier(value) {
		return "Plugin name can only contain lowercase letters, numbers, hyphens, and underscores"
	}
	return ""
}

func (c *Collector) question(message, hint string) string {
	return fmt.Sprintf("%s %s %s › ", c.Console.Success("?"), c.Console.Bold(message), hint)
}

// askText asks for free text. An empty answer takes def. validate, when set,
// returns a message for answers that must be asked again.
func (c *Collector) askText(ctx context.Context, message, def string, validate func(string) string) (string, error) {
	for {
		line, err := c.Reader.ReadLine(ctx, c.question(message, "("+def+")"))
		if err != nil {
			return "", err
		}

		value := strings.TrimSpace(line)
		if value == "" {
			value = def
		}
		if validate != nil {
			if msg := validate(value); msg != "" {
				c.Console.Errorf("  %s", msg)
				continue
			}
		}
		return value, nil
	}
}

// askCategory presents the categories as a numbered menu. Answers may be the
// menu number or the category name.
func (c *Collector) askCategory(ctx context.Context, message string, def plugin.Category) (plugin.Category, error) {
	defIdx := 0
	for i, cat := range plugin.Categories {
		if cat == def {
			defIdx = i
		}
	}

	c.Console.Println(c.question(message, ""))
	for i, cat := range plugin.Categories {
		c.Console.Println(fmt.Sprintf("  %d) %s", i+1, cat.Title()))
	}

	hint := fmt.Sprintf("[1-%d] (%d)", len(plugin.Categories), defIdx+1)
	for {
		line, err := c.Reader.ReadLine(ctx, fmt.Sprintf("  Enter number %s › ", hint))
		if err != nil {
			return "", err
		}

		value := strings.TrimSpace(line)
		if value == "" {
			return plugin.Categories[defIdx], nil
		}
		if num, err := strconv.Atoi(value); err == nil && num >= 1 && num <= len(plugin.Categories) {
			return plugin.Categories[num-1], nil
		}
		var named plugin.Category
		if err := named.UnmarshalText([]byte(value)); err == nil {
			return named, nil
		}

		c.Console.Errorf("  Invalid selection %q: choose 1-%d", value, len(plugin.Categories))
	}
}

// askConfirm asks a yes/no question. An empty answer takes def.
func (c *Collector) askConfirm(ctx context.Context, message string, def bool) (bool, error) {
	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}

	for {
		line, err := c.Reader.ReadLine(ctx, c.question(message, hint))
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.Console.Errorf("  Please answer y or n")
	}
}
