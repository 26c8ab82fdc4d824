package app

import (
	"fmt"

	eicUseCase "github.com/allisson/codeval/internal/eic/usecase"
)

// EICUseCase returns the EIC use case, decorated with metrics when enabled.
func (c *Container) EICUseCase() (eicUseCase.EICUseCase, error) {
	var err error
	c.eicUseCaseInit.Do(func() {
		c.eicUseCase, err = c.initEICUseCase()
		if err != nil {
			c.initErrors["eicUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["eicUseCase"]; exists {
		return nil, storedErr
	}
	return c.eicUseCase, nil
}

// initEICUseCase creates the EIC use case instance.
func (c *Container) initEICUseCase() (eicUseCase.EICUseCase, error) {
	useCase := eicUseCase.NewEICUseCase()

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for EIC use case: %w", err)
	}

	return eicUseCase.NewEICUseCaseWithMetrics(useCase, businessMetrics), nil
}
