package domain

import "fmt"

type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
	EnvironmentTest        Environment = "test"
)

// StoreProfile names a store connection defined in the profiles file.
type StoreProfile struct {
	Name   string
	Driver string
}

func (p StoreProfile) String() string {
	return fmt.Sprintf("%s:%s", p.Driver, p.Name)
}
