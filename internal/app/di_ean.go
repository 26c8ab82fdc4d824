package app

import (
	"fmt"

	eanUseCase "github.com/allisson/codeval/internal/ean/usecase"
)

// EANUseCase returns the EAN use case, decorated with metrics when enabled.
func (c *Container) EANUseCase() (eanUseCase.EANUseCase, error) {
	var err error
	c.eanUseCaseInit.Do(func() {
		c.eanUseCase, err = c.initEANUseCase()
		if err != nil {
			c.initErrors["eanUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["eanUseCase"]; exists {
		return nil, storedErr
	}
	return c.eanUseCase, nil
}

// initEANUseCase creates the EAN use case instance.
func (c *Container) initEANUseCase() (eanUseCase.EANUseCase, error) {
	useCase := eanUseCase.NewEANUseCase()

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for EAN use case: %w", err)
	}

	return eanUseCase.NewEANUseCaseWithMetrics(useCase, businessMetrics), nil
}
