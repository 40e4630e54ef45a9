package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-agent/internal/geo"
	"github.com/jonathan/career-agent/internal/location"
	"github.com/jonathan/career-agent/internal/observability"
)

var locationCmd = &cobra.Command{
	Use:   "location",
	Short: "Manage the saved user location",
	Long:  "Save, inspect, or clear the location used for distance-based job filtering. The location is captured once and reused until cleared.",
}

var locationSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save a location from coordinates",
	RunE:  runLocationSet,
}

var locationShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved location and permission state",
	RunE:  runLocationShow,
}

var locationClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the saved location",
	RunE:  runLocationClear,
}

var (
	locationLat  float64
	locationLon  float64
	locationDeny bool
)

func init() {
	locationSetCmd.Flags().Float64Var(&locationLat, "lat", 0, "Latitude")
	locationSetCmd.Flags().Float64Var(&locationLon, "lon", 0, "Longitude")
	locationSetCmd.Flags().BoolVar(&locationDeny, "deny", false, "Record a sharing refusal instead of a coordinate")

	locationCmd.AddCommand(locationSetCmd)
	locationCmd.AddCommand(locationShowCmd)
	locationCmd.AddCommand(locationClearCmd)
	rootCmd.AddCommand(locationCmd)
}

// locationService opens the CLI state store and wires the optional geocoder.
func locationService(path, geocodeURL string) (*location.Service, func(), error) {
	if path == "" {
		path = "career_agent_location.db"
	}
	store, err := location.OpenStore(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open location store: %w", err)
	}

	var geocoder location.ReverseGeocoder
	if geocodeURL != "" {
		opts := geo.DefaultGeocoderOptions()
		opts.BaseURL = geocodeURL
		geocoder = geo.NewGeocoder(opts)
	}

	return location.NewService(store, geocoder, log), func() { _ = store.Close() }, nil
}

func runLocationSet(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, closeStore, err := locationService(cfg.LocationDB, cfg.GeocodeURL)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := context.Background()

	if locationDeny {
		if err := svc.Deny(ctx); err != nil {
			return fmt.Errorf("failed to record denial: %w", err)
		}
		fmt.Fprintln(os.Stdout, "Location sharing denied; distance filtering stays off.")
		return nil
	}

	if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
		return fmt.Errorf("both --lat and --lon are required (or use --deny)")
	}
	if locationLat < -90 || locationLat > 90 {
		return fmt.Errorf("invalid latitude %v: must be between -90 and 90", locationLat)
	}
	if locationLon < -180 || locationLon > 180 {
		return fmt.Errorf("invalid longitude %v: must be between -180 and 180", locationLon)
	}

	loc, err := svc.Acquire(ctx, locationLat, locationLon)
	if err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}

	if loc.City != "" {
		fmt.Fprintf(os.Stdout, "Location saved: %s, %s\n", loc.City, loc.Country)
	} else {
		fmt.Fprintf(os.Stdout, "Location saved: %.4f, %.4f\n", loc.Latitude, loc.Longitude)
	}

	return nil
}

func runLocationShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, closeStore, err := locationService(cfg.LocationDB, "")
	if err != nil {
		return err
	}
	defer closeStore()

	loc, perm, err := svc.Current(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load location: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintLocation(loc, perm)

	return nil
}

func runLocationClear(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, closeStore, err := locationService(cfg.LocationDB, "")
	if err != nil {
		return err
	}
	defer closeStore()

	if err := svc.Clear(context.Background()); err != nil {
		return fmt.Errorf("failed to clear location: %w", err)
	}

	fmt.Fprintln(os.Stdout, "Saved location cleared.")

	return nil
}
