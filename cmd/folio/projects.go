package main

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/sivadev/folio/internal/models"
)

var (
	listFeatured bool
	listQuery    string
	listPage     int
	listPageSize int
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Browse portfolio projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := models.ListProjectsParams{
			Query:    listQuery,
			Page:     listPage,
			PageSize: listPageSize,
		}
		if cmd.Flags().Changed("featured") {
			params.Featured = &listFeatured
		}

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Fetching projects..."
		s.Start()
		result, err := projectSvc.List(context.Background(), params)
		s.Stop()
		if err != nil {
			return err
		}

		if result.Total == 0 {
			fmt.Println("No projects found.")
			return nil
		}

		fmt.Printf("Projects (%d total):\n\n", result.Total)
		for _, p := range result.Items {
			marker := "  "
			if p.IsFeatured {
				marker = "* "
			}
			fmt.Printf("%s%-24s %s\n", marker, p.Slug, p.Title)
			if p.ShortDescription != "" {
				fmt.Printf("  %s\n", p.ShortDescription)
			}
		}
		return nil
	},
}

var projectsShowCmd = &cobra.Command{
	Use:   "show SLUG",
	Short: "Show one project with its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Fetching project..."
		s.Start()
		project, err := projectSvc.GetBySlug(context.Background(), slug)
		if err != nil {
			s.Stop()
			return err
		}
		comments, err := projectSvc.Comments(context.Background(), slug)
		s.Stop()
		if err != nil {
			return err
		}

		fmt.Printf("%s\n\n", project.Title)
		if project.DescriptionMD != "" {
			r, rerr := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
			if rerr == nil {
				if out, rerr := r.Render(project.DescriptionMD); rerr == nil {
					fmt.Print(out)
				} else {
					fmt.Println(project.DescriptionMD)
				}
			} else {
				fmt.Println(project.DescriptionMD)
			}
		}
		if project.RepoURL != nil {
			fmt.Printf("Repo: %s\n", *project.RepoURL)
		}
		if project.LiveURL != nil {
			fmt.Printf("Live: %s\n", *project.LiveURL)
		}

		fmt.Printf("\nComments (%d):\n", len(comments))
		for _, c := range comments {
			fmt.Printf("\n  %s", c.Name)
			if c.CreatedAt != "" {
				fmt.Printf("  (%s)", c.CreatedAt)
			}
			fmt.Printf("\n  %s\n", c.Content)
		}
		return nil
	},
}

func init() {
	projectsListCmd.Flags().BoolVar(&listFeatured, "featured", false, "Only featured projects")
	projectsListCmd.Flags().StringVar(&listQuery, "query", "", "Search query")
	projectsListCmd.Flags().IntVar(&listPage, "page", 0, "Page number")
	projectsListCmd.Flags().IntVar(&listPageSize, "page-size", 0, "Page size")

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsShowCmd)
}
