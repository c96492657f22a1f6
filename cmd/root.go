package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/chrisdamba/kitchenboard/internal/display"
	"github.com/chrisdamba/kitchenboard/internal/export"
	"github.com/chrisdamba/kitchenboard/internal/factories"
	"github.com/chrisdamba/kitchenboard/internal/kitchen"
	"github.com/chrisdamba/kitchenboard/internal/loader"
	"github.com/chrisdamba/kitchenboard/internal/models"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "kitchenboard",
	Short: "Runs a restaurant kitchen order board session",
	Long:  `kitchenboard loads a menu of appetizers, main courses and desserts onto a fixed-capacity order board, applies dietary accommodations across the board, releases dishes in bulk and reports aggregate kitchen statistics.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		applyFlagOverrides(cmd, cfg)
		if err := runBoard(cmd, cfg); err != nil {
			log.Fatalf("board session failed: %v", err)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./kitchenboard.yaml)")

	rootCmd.Flags().String("menu-file", "", "Menu CSV file to load onto the board")
	rootCmd.Flags().Int("capacity", 200, "Maximum number of dishes the board can hold")
	rootCmd.Flags().Int("seed-dishes", 0, "Number of randomly generated dishes to place")
	rootCmd.Flags().String("output", "", "File to append board events to as JSON lines")
	rootCmd.Flags().Bool("show-progress", true, "Show a progress bar during bulk loading")
	rootCmd.Flags().Bool("vegetarian", false, "Apply the vegetarian accommodation to all dishes")
	rootCmd.Flags().Bool("vegan", false, "Apply the vegan accommodation to all dishes")
	rootCmd.Flags().Bool("gluten-free", false, "Apply the gluten-free accommodation to all dishes")
	rootCmd.Flags().Bool("nut-free", false, "Apply the nut-free accommodation to all dishes")
	rootCmd.Flags().Bool("low-sodium", false, "Apply the low-sodium accommodation to all dishes")
	rootCmd.Flags().Bool("low-sugar", false, "Apply the low-sugar accommodation to all dishes")
	rootCmd.Flags().Int("release-below", 0, "Serve every dish with prep time below this many minutes")
	rootCmd.Flags().String("release-cuisine", "", "Serve every dish of this cuisine (e.g. ITALIAN)")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	viper.AutomaticEnv()
}

func applyFlagOverrides(cmd *cobra.Command, cfg *models.Config) {
	flags := cmd.Flags()
	if flags.Changed("menu-file") {
		cfg.MenuFile, _ = flags.GetString("menu-file")
	}
	if flags.Changed("capacity") {
		cfg.Capacity, _ = flags.GetInt("capacity")
	}
	if flags.Changed("seed-dishes") {
		cfg.SeedDishes, _ = flags.GetInt("seed-dishes")
	}
	if flags.Changed("output") {
		cfg.OutputPath, _ = flags.GetString("output")
	}
	if flags.Changed("show-progress") {
		cfg.ShowProgress, _ = flags.GetBool("show-progress")
	}
}

func buildRequest(cmd *cobra.Command, cfg *models.Config) (models.DietaryRequest, error) {
	request, err := cfg.DietaryRequest()
	if err != nil {
		return request, err
	}
	flags := cmd.Flags()
	boolFlag := func(name string) bool {
		v, _ := flags.GetBool(name)
		return v
	}
	request.Vegetarian = request.Vegetarian || boolFlag("vegetarian")
	request.Vegan = request.Vegan || boolFlag("vegan")
	request.GlutenFree = request.GlutenFree || boolFlag("gluten-free")
	request.NutFree = request.NutFree || boolFlag("nut-free")
	request.LowSodium = request.LowSodium || boolFlag("low-sodium")
	request.LowSugar = request.LowSugar || boolFlag("low-sugar")
	return request, nil
}

func runBoard(cmd *cobra.Command, cfg *models.Config) error {
	board := kitchen.New(cfg.Capacity)

	var sink export.Sink = &export.ConsoleSink{}
	if cfg.OutputPath != "" {
		jsonSink, err := export.NewJSONSink(cfg.OutputPath)
		if err != nil {
			return err
		}
		sink = jsonSink
	}
	defer sink.Close()

	if cfg.MenuFile != "" {
		dishes, stats, err := loader.LoadMenu(cfg.MenuFile, cfg.ShowProgress)
		if err != nil {
			return err
		}
		placed := 0
		for _, dish := range dishes {
			if !board.PlaceOrder(dish) {
				log.Printf("board at capacity (%d), dropping %q", cfg.Capacity, dish.Base().Name)
				continue
			}
			placed++
		}
		log.Printf("menu loaded: %d rows placed, %d rows skipped", placed, stats.Skipped)
		if err := export.Emit(sink, export.TopicMenuLoaded, map[string]int{
			"loaded":  stats.Loaded,
			"skipped": stats.Skipped,
			"placed":  placed,
		}); err != nil {
			return err
		}
	}

	if cfg.SeedDishes > 0 {
		factory := &factories.DishFactory{}
		for i := 0; i < cfg.SeedDishes; i++ {
			if !board.PlaceOrder(factory.CreateDish()) {
				log.Printf("board at capacity (%d), stopping seeding", cfg.Capacity)
				break
			}
		}
	}

	request, err := buildRequest(cmd, cfg)
	if err != nil {
		return err
	}
	if request.Any() {
		board.DietaryAdjustment(request)
		log.Printf("dietary adjustment applied: %s", request)
	}

	flags := cmd.Flags()
	if threshold, _ := flags.GetInt("release-below"); threshold > 0 {
		served := board.ReleaseDishesBelowPrepTime(threshold)
		log.Printf("served %d dishes below %d minutes", served, threshold)
		if err := export.Emit(sink, export.TopicDishServed, map[string]interface{}{
			"reason": "below_prep_time",
			"count":  served,
		}); err != nil {
			return err
		}
	}
	if name, _ := flags.GetString("release-cuisine"); name != "" {
		cuisine := models.ParseCuisineType(name)
		served := board.ReleaseDishesByCuisine(cuisine)
		log.Printf("served %d %s dishes", served, cuisine)
		if err := export.Emit(sink, export.TopicDishServed, map[string]interface{}{
			"reason":  "cuisine",
			"cuisine": cuisine,
			"count":   served,
		}); err != nil {
			return err
		}
	}

	display.RenderMenu(os.Stdout, board.Dishes())
	report := board.Report()
	display.RenderReport(os.Stdout, report)
	return export.Emit(sink, export.TopicReport, report)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
