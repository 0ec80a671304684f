package config

import (
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
)

// ResolveDSN returns the MySQL DSN, assembling one from the individual
// database fields when no explicit DSN is configured.
func (c *AppConfig) ResolveDSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}

	mc := mysqldriver.NewConfig()
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
	mc.User = c.Database.User
	mc.Passwd = c.Database.Password
	mc.DBName = c.Database.Name
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}
