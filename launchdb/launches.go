package launchdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"launchdash.dev/internal/logging"
)

// CreateLaunchParams is one launch record to be stored. Position keeps the
// row order of the source file.
type CreateLaunchParams struct {
	Position               int
	FlightNumber           int
	LaunchSite             string
	Class                  int
	PayloadMassKg          float64
	BoosterVersion         string
	BoosterVersionCategory string
}

// SiteStats aggregates the launches of one site.
type SiteStats struct {
	LaunchSite    string  `json:"launchSite"`
	Launches      int     `json:"launches"`
	Successes     int     `json:"successes"`
	Failures      int     `json:"failures"`
	SuccessRate   float64 `json:"successRate"`
	MinPayloadKg  float64 `json:"minPayloadKg"`
	MaxPayloadKg  float64 `json:"maxPayloadKg"`
	MeanPayloadKg float64 `json:"meanPayloadKg"`
}

// ImportLaunches replaces the stored launches with the given rows in a single transaction.
func (c *Client) ImportLaunches(ctx context.Context, launches []CreateLaunchParams) (err error) {
	start := time.Now()
	defer func() {
		c.importRuntime = time.Since(start)
		if c.config.verbose {
			c.config.logger().Debug("imported launches",
				slog.Int("launch_count", len(launches)),
				slog.Duration("duration", c.importRuntime))
		}
	}()

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, c.config.logger(), "import_launches")

	if _, err := tx.ExecContext(ctx, "DELETE FROM launches"); err != nil {
		return fmt.Errorf("error clearing launches: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO launches (
			position, flight_number, launch_site, class,
			payload_mass_kg, booster_version, booster_version_category
		) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("error preparing launch insert: %w", err)
	}
	defer logging.HandleDeferredError(&err, stmt.Close, c.config.logger(), "close_launch_insert")

	for _, l := range launches {
		_, err := stmt.ExecContext(ctx,
			l.Position, l.FlightNumber, l.LaunchSite, l.Class,
			l.PayloadMassKg, toNullString(l.BoosterVersion), l.BoosterVersionCategory,
		)
		if err != nil {
			return fmt.Errorf("error inserting launch at position %d: %w", l.Position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing launches: %w", err)
	}
	return nil
}

// CountLaunches returns the number of stored launches.
func (c *Client) CountLaunches(ctx context.Context) (int, error) {
	var n int
	if err := c.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM launches").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// SiteStats returns per-site aggregates ordered by the site's first appearance in the source.
func (c *Client) SiteStats(ctx context.Context) ([]SiteStats, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT launch_site, COUNT(*), SUM(class),
			MIN(payload_mass_kg), MAX(payload_mass_kg), AVG(payload_mass_kg)
		FROM launches
		GROUP BY launch_site
		ORDER BY MIN(position)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	stats := []SiteStats{}
	for rows.Next() {
		var s SiteStats
		if err := rows.Scan(&s.LaunchSite, &s.Launches, &s.Successes,
			&s.MinPayloadKg, &s.MaxPayloadKg, &s.MeanPayloadKg); err != nil {
			return nil, err
		}
		s.Failures = s.Launches - s.Successes
		if s.Launches > 0 {
			s.SuccessRate = float64(s.Successes) / float64(s.Launches)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// CountInPayloadRange counts launches with low <= payload <= high. An empty
// site matches every site.
func (c *Client) CountInPayloadRange(ctx context.Context, site string, low, high float64) (int, error) {
	var n int
	err := c.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM launches
		WHERE payload_mass_kg BETWEEN ? AND ?
			AND (? = '' OR launch_site = ?)`,
		low, high, site, site,
	).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
