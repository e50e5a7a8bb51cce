package main

import (
	"io"
	"strings"

	"github.com/viant/sqlite-fuzz/fuzz"
	"github.com/viant/sqlite-fuzz/internal/config"
	"github.com/viant/sqlite-fuzz/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	config *config.Config
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

// setup loads the configuration and configures logging before any command runs.
func (c *commandContext) setup(logOut io.Writer) error {
	var path string
	if c.configFlag != nil {
		path = strings.TrimSpace(*c.configFlag)
	}
	cfg, _, err := config.Load(path)
	if err != nil {
		return err
	}
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
	}
	if err := logging.Setup(cfg.Logging, logOut); err != nil {
		return err
	}
	c.config = cfg
	return nil
}

// method resolves a --method flag, falling back to the configured method.
func (c *commandContext) method(flag string) (fuzz.Method, error) {
	if strings.TrimSpace(flag) == "" {
		return c.config.MethodValue(), nil
	}
	return fuzz.ParseMethod(flag)
}
