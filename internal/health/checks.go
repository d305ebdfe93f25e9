package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
)

const Version = "1.0.0"

// CatalogSource is the part of the catalog the health check needs.
type CatalogSource interface {
	Len() int
}

type Endpoints struct {
	Catalog CatalogSource
}

func NewHealthHandler(serviceName string, endpoints *Endpoints) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    serviceName,
			Version: Version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "catalog",
				Timeout:   time.Second,
				SkipOnErr: false,
				Check:     catalogCheck(endpoints.Catalog),
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func catalogCheck(c CatalogSource) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if c == nil {
			return errors.New("catalog is not initialized")
		}

		if c.Len() == 0 {
			return errors.New("catalog is empty")
		}

		return nil
	}
}
