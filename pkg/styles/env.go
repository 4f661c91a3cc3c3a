package styles

import (
	"fmt"

	"github.com/kohguanzeh/formkit/pkg/config"
)

// EnvConfig maps FORMKIT_* environment variables onto style keys. Variables
// left unset fall through to the Default values.
type EnvConfig struct {
	ErrorMsgClass     string `env:"FORMKIT_ERROR_MSG_CLASS"`
	ErrorMsgStyle     string `env:"FORMKIT_ERROR_MSG_STYLE"`
	ErrorFieldClass   string `env:"FORMKIT_ERROR_FIELD_CLASS"`
	ErrorFieldStyle   string `env:"FORMKIT_ERROR_FIELD_STYLE"`
	SuccessMsgClass   string `env:"FORMKIT_SUCCESS_MSG_CLASS"`
	SuccessMsgStyle   string `env:"FORMKIT_SUCCESS_MSG_STYLE"`
	SuccessFieldClass string `env:"FORMKIT_SUCCESS_FIELD_CLASS"`
	SuccessFieldStyle string `env:"FORMKIT_SUCCESS_FIELD_STYLE"`
	MessageContainer  string `env:"FORMKIT_MESSAGE_CONTAINER"`
}

// FromEnv builds Options from the environment on top of Default.
func FromEnv() (Options, error) {
	var cfg EnvConfig
	if err := config.Load(&cfg); err != nil {
		return Options{}, err
	}
	return FromConfig(cfg), nil
}

// MustFromEnv is FromEnv but panics on failure, for construction-time wiring
// where a malformed environment should stop the program.
func MustFromEnv() Options {
	o, err := FromEnv()
	if err != nil {
		panic(fmt.Sprintf("failed to load style configuration: %v", err))
	}
	return o
}

// FromConfig overlays the non-empty keys of cfg onto Default.
func FromConfig(cfg EnvConfig) Options {
	var ovs []Override
	if cfg.ErrorMsgClass != "" {
		ovs = append(ovs, WithErrorMsgClass(cfg.ErrorMsgClass))
	}
	if cfg.ErrorMsgStyle != "" {
		ovs = append(ovs, WithErrorMsgStyle(cfg.ErrorMsgStyle))
	}
	if cfg.ErrorFieldClass != "" {
		ovs = append(ovs, WithErrorFieldClass(cfg.ErrorFieldClass))
	}
	if cfg.ErrorFieldStyle != "" {
		ovs = append(ovs, WithErrorFieldStyle(cfg.ErrorFieldStyle))
	}
	if cfg.SuccessMsgClass != "" {
		ovs = append(ovs, WithSuccessMsgClass(cfg.SuccessMsgClass))
	}
	if cfg.SuccessMsgStyle != "" {
		ovs = append(ovs, WithSuccessMsgStyle(cfg.SuccessMsgStyle))
	}
	if cfg.SuccessFieldClass != "" {
		ovs = append(ovs, WithSuccessFieldClass(cfg.SuccessFieldClass))
	}
	if cfg.SuccessFieldStyle != "" {
		ovs = append(ovs, WithSuccessFieldStyle(cfg.SuccessFieldStyle))
	}
	if cfg.MessageContainer != "" {
		ovs = append(ovs, WithMessageContainer(cfg.MessageContainer))
	}
	return Merge(Default(), ovs...)
}
