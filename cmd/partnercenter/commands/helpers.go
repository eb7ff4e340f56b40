package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/partnercenter/internal/constants"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// Common static errors used throughout the commands package.
var (
	ErrFamilyRequired   = errors.New("product family is required (use --family)")
	ErrCountryRequired  = errors.New("at least one country is required (use --country)")
	ErrTemplateRequired = errors.New("agreement template is required (use --template-id)")
)

// stdout is the destination of command output. Tests replace it.
var stdout io.Writer = os.Stdout

// render writes data in the configured output format. table renders the
// default format.
func render(data interface{}, table func(io.Writer) error) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode output as JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(stdout)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode output as YAML: %w", err)
		}

		return encoder.Close()
	case constants.FormatTable, "":
		return table(stdout)
	default:
		return fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, output)
	}
}

// renderTable writes rows under header, or the empty message when there are
// no rows.
func renderTable(writer io.Writer, empty string, header []string, rows [][]string) error {
	if len(rows) == 0 {
		_, _ = io.WriteString(writer, empty+"\n")

		return nil
	}

	table := tablewriter.NewWriter(writer)
	table.Header(header)

	for _, row := range rows {
		_ = table.Append(row)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderProperties writes a two column property table.
func renderProperties(writer io.Writer, properties [][]string) error {
	return renderTable(writer, "", []string{"Property", "Value"}, properties)
}

// truncate shortens text for table cells.
func truncate(text string) string {
	if len(text) <= constants.DescriptionDisplayLength {
		return text
	}

	return text[:constants.DescriptionDisplayLength-3] + "..."
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func formatBool(value bool) string {
	return strconv.FormatBool(value)
}

// FormatError renders a command error. Partner service errors carry their
// category.
func FormatError(err error) string {
	category, ok := partner.CategoryOf(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}

	return fmt.Sprintf("Error [%s]: %v", category, err)
}
