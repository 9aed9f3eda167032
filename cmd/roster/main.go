// Command roster is the operations CLI: it seeds a demo roster, prints
// per-subject occupancy, and queries the catalog index. It opens the
// same stores as the server, so run it while the server is stopped.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"elective-hub/auth"
	"elective-hub/domain"
	"elective-hub/internal"
	"elective-hub/repositories"
	"elective-hub/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	logger := internal.NewLogger(cfg.LogLevel)

	if len(os.Args) < 2 {
		return fmt.Errorf("usage: roster <seed|occupancy ELECTIVE_ID|search QUERY>")
	}

	db, err := badger.Open(badger.DefaultOptions(cfg.BadgerFilepath).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()

	roster := repositories.NewRosterRepository(db, logger)
	selections := repositories.NewSelectionRepository(db, logger, 3)

	switch os.Args[1] {
	case "seed":
		return seed(cfg, logger, roster)
	case "occupancy":
		if len(os.Args) < 3 {
			return fmt.Errorf("usage: roster occupancy ELECTIVE_ID")
		}
		id, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("bad elective id %q", os.Args[2])
		}
		return occupancy(cfg, roster, selections, domain.ElectiveID(id))
	case "search":
		if len(os.Args) < 3 {
			return fmt.Errorf("usage: roster search QUERY")
		}
		return search(cfg, logger, os.Args[2])
	default:
		return fmt.Errorf("unknown command %q", os.Args[1])
	}
}

// seed writes a small demo roster: one open elective, one future one, a
// team-restricted subject, and a handful of accounts.
func seed(cfg Config, logger *slog.Logger, roster repositories.RosterRepository) error {
	now := time.Now()
	robotics := domain.Elective{
		ID: 1, Name: "Robotics Week", Starts: now.Add(-24 * time.Hour), Ends: now.Add(30 * 24 * time.Hour),
	}
	winter := domain.Elective{
		ID: 2, Name: "Winter Sports", Starts: now.Add(60 * 24 * time.Hour), Ends: now.Add(90 * 24 * time.Hour),
	}

	seniors := domain.TeamID(10)
	subjects := []domain.Subject{
		{ID: 101, ElectiveID: 1, Name: "Line Follower Lab", Capacity: 2},
		{ID: 102, ElectiveID: 1, Name: "Drone Assembly", Capacity: 4},
		{ID: 103, ElectiveID: 1, Name: "Autonomous Rover", Capacity: 3, TeamID: &seniors},
		{ID: 201, ElectiveID: 2, Name: "Cross-Country Skiing", Capacity: 8},
	}

	accounts := []struct {
		id, name, password string
		role               domain.Role
	}{
		{"alice", "Alice Martin", "Str0ng-Pass-Alice!", domain.RoleStudent},
		{"bob", "Bob Dupont", "Str0ng-Pass-Bob!!", domain.RoleStudent},
		{"carol", "Carol Petit", "Str0ng-Pass-Carol!", domain.RoleStudent},
		{"mr-durand", "M. Durand", "Str0ng-Pass-Durand!", domain.RoleTeacher},
	}

	for _, e := range []domain.Elective{robotics, winter} {
		if err := roster.PutElective(e); err != nil {
			return err
		}
	}
	for _, s := range subjects {
		if err := roster.PutSubject(s); err != nil {
			return err
		}
	}

	for _, acc := range accounts {
		if err := auth.ValidateAccount(auth.Account{UserID: acc.id, Name: acc.name, Password: acc.password}); err != nil {
			return fmt.Errorf("account %s: %w", acc.id, err)
		}
		hash, err := auth.HashPassword(acc.password)
		if err != nil {
			return err
		}
		if acc.role == domain.RoleTeacher {
			if err := roster.PutTeacher(domain.Teacher{ID: acc.id, Name: acc.name, PasswordHash: hash}); err != nil {
				return err
			}
		} else {
			if err := roster.PutStudent(domain.Student{ID: acc.id, Name: acc.name, PasswordHash: hash}); err != nil {
				return err
			}
		}
	}

	// alice and bob are seniors; the rover subject is theirs alone.
	for _, studentID := range []string{"alice", "bob"} {
		if err := roster.AddTeamMember(seniors, studentID); err != nil {
			return err
		}
	}
	for _, s := range subjects[:3] {
		if err := roster.SetTeaches("mr-durand", s.ID); err != nil {
			return err
		}
	}

	// Catalog index, so search works right after seeding.
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(cfg.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer writer.Close()
	catalog := services.NewCatalogService(logger, writer)
	if err := catalog.Index([]domain.Elective{robotics, winter}, subjects); err != nil {
		return err
	}

	logger.Info("Roster seeded", "electives", 2, "subjects", len(subjects), "accounts", len(accounts))
	return nil
}

func occupancy(cfg Config, roster repositories.RosterRepository,
	selections repositories.SelectionRepository, electiveID domain.ElectiveID) error {
	elective, err := roster.GetElective(electiveID)
	if err != nil {
		return err
	}
	subjects, err := roster.SubjectsOf(electiveID)
	if err != nil {
		return err
	}
	ids := lo.Map(subjects, func(s domain.Subject, _ int) domain.SubjectID { return s.ID })
	counts, err := selections.EnrolledCounts(electiveID, ids)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s (#%d)", elective.Name, elective.ID)
	if cfg.Colours {
		title = color.New(color.BgBlack, color.FgGreen).Render(title)
	}
	fmt.Println(title)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Subject", "Name", "Enrolled", "Capacity", "Free"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, s := range subjects {
		enrolled := counts[s.ID]
		free := strconv.Itoa(s.Capacity - enrolled)
		if cfg.Colours && enrolled >= s.Capacity {
			free = color.Red.Render("FULL")
		}
		table.Append([]string{
			strconv.FormatInt(int64(s.ID), 10),
			s.Name,
			strconv.Itoa(enrolled),
			strconv.Itoa(s.Capacity),
			free,
		})
	}
	table.Render()
	return nil
}

func search(cfg Config, logger *slog.Logger, query string) error {
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(cfg.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer writer.Close()

	catalog := services.NewCatalogService(logger, writer)
	hits, err := catalog.Search(context.Background(), query, 10)
	if err != nil {
		return err
	}
	if len(hits) == 0 {
		fmt.Println("no matches")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Kind", "Name"})
	table.SetBorder(false)
	for _, hit := range hits {
		table.Append([]string{hit.ID, hit.Kind, hit.Name})
	}
	table.Render()
	return nil
}
