package commands

import (
	"context"
	"fmt"

	eicUseCase "github.com/allisson/codeval/internal/eic/usecase"
)

// RunGenerateEIC generates one or more EIC codes for the given issuing office
// and entity type and writes them to the IOTuple writer, one per line.
func RunGenerateEIC(
	ctx context.Context,
	useCase eicUseCase.EICUseCase,
	ioTuple IOTuple,
	countryCode string,
	entityType string,
	count int,
) error {
	if count == 1 {
		code, err := useCase.Generate(ctx, countryCode, entityType)
		if err != nil {
			return fmt.Errorf("failed to generate EIC: %w", err)
		}
		fmt.Fprintln(ioTuple.Writer, code)
		return nil
	}

	codes, err := useCase.GenerateMany(ctx, countryCode, entityType, count)
	if err != nil {
		return fmt.Errorf("failed to generate EICs: %w", err)
	}
	for _, code := range codes {
		fmt.Fprintln(ioTuple.Writer, code)
	}
	return nil
}
