package database

import (
	"Inkwell/config"
	"Inkwell/models"
	"Inkwell/pkg/log"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(conf.Database)
	if err != nil {
		return nil, err
	}

	db, err := Open(dialector, conf.Debug())
	if err != nil {
		log.L.Error("failed to connect database", zap.String("driver", conf.Database.Driver), zap.Error(err))
		return nil, err
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))

	if conf.Database.Driver == config.DriverSqlite {
		// sqlite 单写者, 同时保证 :memory: 只有一个连接
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if conf.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func Dialector(conf *config.Database) (gorm.Dialector, error) {
	switch conf.Driver {
	case config.DriverMySQL:
		return mysql.Open(conf.Dsn()), nil
	case config.DriverPostgres:
		return postgres.Open(conf.Dsn()), nil
	case config.DriverSqlite:
		return sqlite.Open(conf.Dsn()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}
}

// Open 打开连接, 唯一键冲突统一翻译为 gorm.ErrDuplicatedKey
func Open(dialector gorm.Dialector, debug bool) (*gorm.DB, error) {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(zap.NewStdLog(log.L), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Chapter{},
		&models.Card{},
		&models.CardChapter{},
		&models.Review{},
	); err != nil {
		log.L.Error("auto migrate failed", zap.Error(err))
		return err
	}
	return nil
}
