package cmd

import "fmt"

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           int
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	StatsJobSchedule string
}

// DSN renders the keyword/value connection string shared by gorm and the
// pq change feed listener.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
