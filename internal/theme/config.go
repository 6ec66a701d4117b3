package theme

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	maquetteerrors "github.com/alexisbeaulieu97/maquette/pkg/errors"
)

// Config is the parsed theme configuration document.
type Config struct {
	DefaultTheme string        `yaml:"default_theme,omitempty" validate:"omitempty,theme_id"`
	Themes       []ThemeRef    `yaml:"themes,omitempty" validate:"omitempty,dive"`
	CustomThemes []CustomTheme `yaml:"custom_themes,omitempty" validate:"omitempty,dive"`
}

// ThemeRef declares a theme expected to exist in the registry.
type ThemeRef struct {
	ID   string `yaml:"id" validate:"required,theme_id"`
	Name string `yaml:"name" validate:"required,min=1,max=100"`
}

// CustomTheme declares a theme to register with variable overrides.
type CustomTheme struct {
	ID          string            `yaml:"id" validate:"required,theme_id"`
	Name        string            `yaml:"name" validate:"required,min=1,max=100"`
	Description string            `yaml:"description,omitempty"`
	Variables   map[string]string `yaml:"variables,omitempty" validate:"omitempty,dive,hexcolor"`
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseThemeConfig decodes and validates a serialized theme configuration.
// Nothing is applied from a document that fails either step.
func ParseThemeConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, maquetteerrors.NewParseError("theme config", extractLine(err), err)
	}

	if err := validateThemeConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validateThemeConfig(cfg *Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			first := fieldErrors[0]
			message := fmt.Sprintf("failed on rule %q", first.Tag())
			return maquetteerrors.NewValidationError(first.Namespace(), message, err)
		}
		return maquetteerrors.NewValidationError("", "configuration validation failed", err)
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator used for
// every declarative document in the library.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_id", func(fl validator.FieldLevel) bool {
			return themeIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator exposes the shared validator for other schema packages.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// FormatVariables renders a variable map deterministically for logs and
// CLI output.
func FormatVariables(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}

	parts := make([]string, 0, len(vars))
	for name, value := range vars {
		parts = append(parts, name+"="+value)
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}
