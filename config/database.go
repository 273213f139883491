package config

import "fmt"

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

// Database 数据库配置
type Database struct {
	Driver   string `json:"driver" yaml:"driver"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Name     string `json:"name" yaml:"name"`
	// Path sqlite 文件路径, ":memory:" 为内存库
	Path        string `json:"path" yaml:"path"`
	AutoMigrate bool   `json:"auto_migrate" yaml:"auto_migrate"`
}

func (d *Database) Dsn() string {
	switch d.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.Username, d.Password, d.Host, d.Port, d.Name)
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			d.Host, d.Port, d.Username, d.Password, d.Name)
	default:
		if d.Path == "" {
			return "inkwell.db"
		}
		return d.Path
	}
}
