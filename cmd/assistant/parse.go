package main

import (
	"strings"

	"github.com/spf13/cobra"

	"immo-assistant/internal/lexicon"
	"immo-assistant/internal/model"
	"immo-assistant/internal/service"
)

func newParseCmd(opts *rootOptions) *cobra.Command {
	var prior model.SearchFilters
	var amenities []string

	cmd := &cobra.Command{
		Use:   "parse <query>",
		Short: "Turn a free-text search into structured filters",
		Long: `Parse extracts search filters from a query and merges them into the
filters given as flags. Flags always win over what the query implies.

Examples:
  assistant parse "maison 4 chambres piscine" --location Paris
  assistant parse "appartement vue mer" --amenity "🌳 Jardin"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger()
			defer func() { _ = logger.Sync() }()

			engine, err := service.NewEngineFromOptions(service.EngineOptions{
				TemplatesPath: opts.templatesPath,
				Seed:          opts.seed,
				Logger:        logger,
			})
			if err != nil {
				return err
			}

			prior.Amenities = lexicon.NormalizeAmenities(amenities)
			filters, facts := engine.ParseQueryFacts(strings.Join(args, " "), prior)
			return printJSON(cmd.OutOrStdout(), model.ParseResponse{Filters: filters, Facts: facts})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&prior.Location, "location", "", "location filter")
	flags.StringVar(&prior.PropertyType, "type", "", "property type filter")
	flags.StringVar(&prior.PriceMin, "price-min", "", "minimum price")
	flags.StringVar(&prior.PriceMax, "price-max", "", "maximum price")
	flags.StringVar(&prior.Bedrooms, "bedrooms", "", "bedroom count")
	flags.StringSliceVar(&amenities, "amenity", nil, "amenity tag or label (repeatable)")
	return cmd
}
