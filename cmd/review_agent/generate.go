package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/review-schedule/internal/article"
	"github.com/jonathan/review-schedule/internal/rendering"
	"github.com/jonathan/review-schedule/internal/schemas"
	"github.com/jonathan/review-schedule/internal/types"
)

// Output formats handled by the CLI on top of the record export formats.
const (
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the review schedule article of one vehicle",
	Long: `Generates a single review schedule article from a vehicle described by flags
or by a VehicleProfile JSON file (--vehicle). The article is written as JSON in
the chosen export format, or rendered as Markdown or HTML.`,
	RunE: runGenerate,
}

var (
	generateVehicle     string
	generateMake        string
	generateModel       string
	generateYear        int
	generateType        string
	generateEngine      string
	generateFuel        string
	generateVersion     string
	generateSegment     string
	generateSubcategory string
	generateFormat      string
	generateOutput      string
	generateEventsDB    string
	generateVerbose     bool
)

func init() {
	generateCmd.Flags().StringVar(&generateVehicle, "vehicle", "", "Path to a VehicleProfile JSON file (overrides the vehicle flags)")
	generateCmd.Flags().StringVar(&generateMake, "make", "", "Vehicle make")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "Vehicle model")
	generateCmd.Flags().IntVar(&generateYear, "year", 0, "Model year")
	generateCmd.Flags().StringVar(&generateType, "type", "", "Vehicle type: car, motorcycle, electric or hybrid")
	generateCmd.Flags().StringVar(&generateEngine, "engine", "", "Engine description, e.g. 2.0 Flex")
	generateCmd.Flags().StringVar(&generateFuel, "fuel", "", "Fuel type")
	generateCmd.Flags().StringVar(&generateVersion, "version", "", "Trim version")
	generateCmd.Flags().StringVar(&generateSegment, "segment", "", "Market segment, e.g. premium")
	generateCmd.Flags().StringVar(&generateSubcategory, "subcategory", "", "Subcategory, e.g. suv or sport")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", article.FormatFull, "Output format: full, minimal, storage-document, json, markdown or html")
	generateCmd.Flags().StringVarP(&generateOutput, "out", "o", "", "Output file (default stdout)")
	generateCmd.Flags().StringVar(&generateEventsDB, "events-db", "", "SQLite file receiving article events")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	var profile types.VehicleProfile
	if generateVehicle != "" {
		loaded, err := loadProfile(generateVehicle)
		if err != nil {
			return err
		}
		profile = loaded
	} else {
		profile = types.VehicleProfile{
			Make:        generateMake,
			Model:       generateModel,
			Year:        generateYear,
			VehicleType: types.ParseVehicleType(generateType),
			Engine:      generateEngine,
			FuelType:    generateFuel,
			Version:     generateVersion,
			Segment:     generateSegment,
			Subcategory: generateSubcategory,
		}
		if strings.TrimSpace(profile.Make) == "" || strings.TrimSpace(profile.Model) == "" {
			return fmt.Errorf("either --vehicle or both --make and --model must be provided")
		}
	}

	logger := newLogger(cmd.ErrOrStderr(), generateVerbose)
	sink, closeSink, err := openSink(generateEventsDB, logger)
	if err != nil {
		return err
	}
	defer closeSink()

	assembler := article.NewAssembler(
		article.WithSink(sink),
		article.WithGenerator(newGenerator(logger)),
	)
	record, err := assembler.Create(cmd.Context(), profile)
	if err != nil {
		return fmt.Errorf("failed to generate article: %w", err)
	}

	data, err := renderRecord(record, generateFormat)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), generateOutput, data)
}

// loadProfile reads a VehicleProfile JSON file after checking it against the
// vehicle profile schema.
func loadProfile(path string) (types.VehicleProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.VehicleProfile{}, fmt.Errorf("failed to read vehicle file %s: %w", path, err)
	}
	if err := schemas.ValidateDocument(schemas.VehicleProfile, content); err != nil {
		return types.VehicleProfile{}, fmt.Errorf("invalid vehicle file %s: %w", path, err)
	}

	var profile types.VehicleProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return types.VehicleProfile{}, fmt.Errorf("failed to unmarshal vehicle JSON: %w", err)
	}
	profile.VehicleType = profile.VehicleType.Normalize()
	return profile, nil
}

// renderRecord serializes record in format. Markdown and HTML render the
// article body; every other value is a record export format.
func renderRecord(record *article.Record, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case formatMarkdown, "md":
		md, err := rendering.Markdown(record)
		if err != nil {
			return nil, fmt.Errorf("failed to render markdown: %w", err)
		}
		return []byte(md), nil
	case formatHTML:
		page, err := rendering.HTML(record)
		if err != nil {
			return nil, fmt.Errorf("failed to render html: %w", err)
		}
		return []byte(page), nil
	}

	exported := record.Export(format)
	if s, ok := exported.(string); ok {
		return []byte(s), nil
	}
	data, err := article.MarshalIndent(exported)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal article: %w", err)
	}
	return data, nil
}
