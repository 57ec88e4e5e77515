package app

import (
	"fmt"

	cardgenHTTP "github.com/allisson/cardgen/internal/cardgen/http"
	"github.com/allisson/cardgen/internal/cardgen/service"
	cardgenUseCase "github.com/allisson/cardgen/internal/cardgen/usecase"
)

// Generator returns the batch generator. Every call to its Generate builds a
// fresh digit source, so the instance is shared by concurrent requests.
func (c *Container) Generator() cardgenUseCase.BatchGenerator {
	c.generatorInit.Do(func() {
		c.generator = service.NewPerCallGenerator(c.generatorOptions()...)
	})
	return c.generator
}

// BucketExporter returns the blob exporter used for bucket export destinations.
func (c *Container) BucketExporter() service.BucketExporter {
	c.bucketExporterInit.Do(func() {
		c.bucketExporter = service.NewBucketExporter()
	})
	return c.bucketExporter
}

// CardUseCase returns the card use case instance, wrapped with business metrics.
func (c *Container) CardUseCase() (cardgenUseCase.CardUseCase, error) {
	var err error
	c.cardUseCaseInit.Do(func() {
		c.cardUseCase, err = c.initCardUseCase()
		if err != nil {
			c.initErrors["cardUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cardUseCase"]; exists {
		return nil, storedErr
	}
	return c.cardUseCase, nil
}

// CardHandler returns the card HTTP handler instance.
func (c *Container) CardHandler() (*cardgenHTTP.CardHandler, error) {
	var err error
	c.cardHandlerInit.Do(func() {
		c.cardHandler, err = c.initCardHandler()
		if err != nil {
			c.initErrors["cardHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cardHandler"]; exists {
		return nil, storedErr
	}
	return c.cardHandler, nil
}

func (c *Container) initCardUseCase() (cardgenUseCase.CardUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for card use case: %w", err)
	}

	useCase := cardgenUseCase.NewCardUseCase(
		c.Generator(),
		c.config.GeneratorTargetLength,
		c.config.GeneratorMaxQuantity,
	)

	return cardgenUseCase.NewCardUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initCardHandler() (*cardgenHTTP.CardHandler, error) {
	useCase, err := c.CardUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get card use case for card handler: %w", err)
	}
	return cardgenHTTP.NewCardHandler(useCase, c.Logger()), nil
}
