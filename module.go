package mvola

import (
	"github.com/flexprice/mvola-go/internal/config"
	"github.com/flexprice/mvola-go/internal/logger"
	"github.com/flexprice/mvola-go/internal/validator"
	"go.uber.org/fx"
)

// Module provides *Client and its configuration to an fx application
var Module = fx.Options(
	fx.Provide(
		// Validator
		validator.NewValidator,

		// Config
		config.NewConfig,

		// Logger
		logger.NewLogger,

		// Client
		NewFromConfig,
	),
)
