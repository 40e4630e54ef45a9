package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-agent/internal/jobs"
	"github.com/jonathan/career-agent/internal/location"
	"github.com/jonathan/career-agent/internal/observability"
	"github.com/jonathan/career-agent/internal/types"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Search the job posting catalog",
	Long:  "Filter the curated posting catalog by text query, remote preference, distance from the saved location, employment type, experience level, salary range, skills, and posting age.",
	RunE:  runJobs,
}

var (
	jobsQuery        string
	jobsRemote       bool
	jobsOnsite       bool
	jobsRadiusKm     float64
	jobsEmployment   []string
	jobsExperience   []string
	jobsSalaryMin    int
	jobsSalaryMax    int
	jobsSkills       []string
	jobsPostedWithin string
)

func init() {
	jobsCmd.Flags().StringVarP(&jobsQuery, "query", "q", "", "Text query over title, company, description, and skills")
	jobsCmd.Flags().BoolVar(&jobsRemote, "remote", false, "Only remote postings")
	jobsCmd.Flags().BoolVar(&jobsOnsite, "onsite", false, "Only on-site postings")
	jobsCmd.Flags().Float64Var(&jobsRadiusKm, "radius-km", 0, "Maximum distance from the saved location in km")
	jobsCmd.Flags().StringSliceVar(&jobsEmployment, "employment-type", nil, "Employment types (full-time, part-time, contract, internship)")
	jobsCmd.Flags().StringSliceVar(&jobsExperience, "experience-level", nil, "Experience levels (entry, mid, senior, lead, executive)")
	jobsCmd.Flags().IntVar(&jobsSalaryMin, "salary-min", 0, "Minimum salary")
	jobsCmd.Flags().IntVar(&jobsSalaryMax, "salary-max", 0, "Maximum salary")
	jobsCmd.Flags().StringSliceVar(&jobsSkills, "skill", nil, "Required skills")
	jobsCmd.Flags().StringVar(&jobsPostedWithin, "posted-within", "", "Posting age window (24h, 3d, 7d, 14d, 30d)")

	rootCmd.AddCommand(jobsCmd)
}

// jobsFilters assembles the filter specification from the command flags.
func jobsFilters() (*types.JobFilters, error) {
	if jobsRemote && jobsOnsite {
		return nil, fmt.Errorf("--remote and --onsite are mutually exclusive; provide only one")
	}

	filters := &types.JobFilters{
		Query:        jobsQuery,
		Skills:       jobsSkills,
		PostedWithin: types.PostedWithin(jobsPostedWithin),
	}
	if jobsRemote {
		v := true
		filters.IsRemote = &v
	}
	if jobsOnsite {
		v := false
		filters.IsRemote = &v
	}
	if jobsRadiusKm > 0 {
		filters.RadiusKm = &jobsRadiusKm
	}
	for _, v := range jobsEmployment {
		filters.EmploymentTypes = append(filters.EmploymentTypes, types.EmploymentType(v))
	}
	for _, v := range jobsExperience {
		filters.ExperienceLevels = append(filters.ExperienceLevels, types.ExperienceLevel(v))
	}
	if jobsSalaryMin > 0 {
		filters.SalaryMin = &jobsSalaryMin
	}
	if jobsSalaryMax > 0 {
		filters.SalaryMax = &jobsSalaryMax
	}

	return filters, nil
}

// savedLocation loads the granted location from the CLI state file, if any.
func savedLocation(ctx context.Context, path string) *types.UserLocation {
	if path == "" {
		return nil
	}
	store, err := location.OpenStore(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("location store unavailable")
		return nil
	}
	defer store.Close() //nolint:errcheck

	loc, perm, err := store.Load(ctx)
	if err != nil || perm != types.PermissionGranted {
		return nil
	}
	return loc
}

func runJobs(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	filters, err := jobsFilters()
	if err != nil {
		return err
	}

	loc := savedLocation(context.Background(), cfg.LocationDB)
	if filters.RadiusKm != nil && loc == nil {
		fmt.Fprintln(os.Stdout, "No saved location; distance filter skipped. Run 'career_agent location set' first.")
	}

	matched := jobs.NewStore().Search(filters, loc)

	now := time.Now()
	salaries := make([]string, len(matched))
	posted := make([]string, len(matched))
	for i, job := range matched {
		salaries[i] = jobs.FormatSalary(job.Salary)
		posted[i] = jobs.FormatPostedDate(job.PostedAt, now)
	}

	observability.NewPrinter(os.Stdout).PrintJobs(matched, salaries, posted)

	return nil
}
