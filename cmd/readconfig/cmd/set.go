package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/listenupapp/readconfig/internal/domain"
	domainerrors "github.com/listenupapp/readconfig/internal/errors"
	"github.com/listenupapp/readconfig/internal/service"
)

// settableFields lists the field names accepted by "set".
var settableFields = []string{
	"color-index",
	"font-size",
	"line-spacing",
	"paragraph-spacing",
	"page-type",
	"auto-read-mode",
	"auto-read-speed",
}

var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set one preference",
	Long: `Set a single preference and persist it.

Fields: ` + strings.Join(settableFields, ", ") + `

Examples:
  readconfig set font-size 22
  readconfig set line-spacing 12.5
  readconfig set page-type slide`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: settableFields,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := buildUpdate(args[0], args[1])
		if err != nil {
			return err
		}

		view, err := preferencesService().Update(cmd.Context(), req)
		if err != nil {
			return describe(err)
		}
		renderView(cmd.OutOrStdout(), view)
		return nil
	},
}

var colorCmd = &cobra.Command{
	Use:   "color <index>",
	Short: "Select the reading colors for the active theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCmd.RunE(cmd, []string{"color-index", args[0]})
	},
}

var pageTypeCmd = &cobra.Command{
	Use:       "page-type <" + strings.Join(enumNames(domain.PageTypes()), "|") + ">",
	Short:     "Set the page-turn mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: enumNames(domain.PageTypes()),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCmd.RunE(cmd, []string{"page-type", args[0]})
	},
}

var autoReadModeCmd = &cobra.Command{
	Use:       "auto-read-mode <" + strings.Join(enumNames(domain.AutoReadModes()), "|") + ">",
	Short:     "Set the auto-read mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: enumNames(domain.AutoReadModes()),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCmd.RunE(cmd, []string{"auto-read-mode", args[0]})
	},
}

// buildUpdate turns a field name and raw value into an update request.
func buildUpdate(field, value string) (service.UpdatePreferencesRequest, error) {
	var req service.UpdatePreferencesRequest

	switch field {
	case "color-index", "font-size", "auto-read-speed":
		n, err := strconv.Atoi(value)
		if err != nil {
			return req, fmt.Errorf("%s must be an integer, got %q", field, value)
		}
		switch field {
		case "color-index":
			req.ColorIndex = &n
		case "font-size":
			req.FontSize = &n
		default:
			req.AutoReadSpeed = &n
		}
	case "line-spacing", "paragraph-spacing":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return req, fmt.Errorf("%s must be a number, got %q", field, value)
		}
		if field == "line-spacing" {
			req.LineSpacing = &f
		} else {
			req.ParagraphSpacing = &f
		}
	case "page-type":
		req.PageType = &value
	case "auto-read-mode":
		req.AutoReadMode = &value
	default:
		return req, fmt.Errorf("unknown field %q (expected one of %s)", field, strings.Join(settableFields, ", "))
	}

	return req, nil
}

// describe flattens validation details into the error text for terminal output.
func describe(err error) error {
	var domainErr *domainerrors.Error
	if !domainerrors.As(err, &domainErr) {
		return err
	}

	details, ok := domainErr.Details.(map[string]string)
	if !ok || len(details) == 0 {
		return err
	}

	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k[strings.LastIndex(k, ".")+1:]+" "+details[k])
	}
	return fmt.Errorf("%s: %s", domainErr.Message, strings.Join(parts, "; "))
}

func enumNames[T ~string](values []T) []string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return names
}
