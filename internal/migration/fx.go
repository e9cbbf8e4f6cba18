package migration

import (
	analyticsdomain "github.com/amanahworks/folio/internal/analytics/domain"
	articledomain "github.com/amanahworks/folio/internal/article/domain"
	authdomain "github.com/amanahworks/folio/internal/auth/domain"
	calcdomain "github.com/amanahworks/folio/internal/calcresult/domain"
	"github.com/amanahworks/folio/internal/config"
	contactdomain "github.com/amanahworks/folio/internal/contact/domain"
	leaddomain "github.com/amanahworks/folio/internal/lead/domain"
	testimonialdomain "github.com/amanahworks/folio/internal/testimonial/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType != "postgres" {
			return conn.AutoMigrate(
				&authdomain.User{},
				&authdomain.Session{},
				&articledomain.Article{},
				&testimonialdomain.Testimonial{},
				&contactdomain.ContactMessage{},
				&leaddomain.Lead{},
				&calcdomain.CalculatorResult{},
				&analyticsdomain.PageViewDaily{},
			)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
