package commands

import (
	"context"
	"fmt"

	eanDomain "github.com/allisson/codeval/internal/ean/domain"
	eanUseCase "github.com/allisson/codeval/internal/ean/usecase"
)

// RunGenerateEAN generates one or more EAN codes and writes them to the IOTuple
// writer, one per line. When baseCode is set, the check digit is computed for it
// and count must be 1; otherwise codes are drawn at random.
func RunGenerateEAN(
	ctx context.Context,
	useCase eanUseCase.EANUseCase,
	ioTuple IOTuple,
	baseCode string,
	eanType string,
	count int,
) error {
	format, err := eanDomain.ParseFormat(eanType)
	if err != nil {
		return err
	}

	if baseCode != "" {
		if count != 1 {
			return fmt.Errorf("base-code only generates a single code, remove the count flag")
		}
		code, err := useCase.Generate(ctx, baseCode, format)
		if err != nil {
			return fmt.Errorf("failed to generate EAN: %w", err)
		}
		fmt.Fprintln(ioTuple.Writer, code)
		return nil
	}

	if count == 1 {
		code, err := useCase.GenerateRandom(ctx, format)
		if err != nil {
			return fmt.Errorf("failed to generate EAN: %w", err)
		}
		fmt.Fprintln(ioTuple.Writer, code)
		return nil
	}

	codes, err := useCase.GenerateMany(ctx, format, count)
	if err != nil {
		return fmt.Errorf("failed to generate EANs: %w", err)
	}
	for _, code := range codes {
		fmt.Fprintln(ioTuple.Writer, code)
	}
	return nil
}
