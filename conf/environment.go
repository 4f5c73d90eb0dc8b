package conf

import "fmt"

// EnvironmentEnum deployment environment selected with -env
type EnvironmentEnum int

const (
	LocalEnvironmentEnum EnvironmentEnum = iota
	MainnetEnvironmentEnum
	TestnetEnvironmentEnum
	ExampleEnvironmentEnum
)

// SystemEnvironmentEnum current environment, set by the binaries before InitConfig
var SystemEnvironmentEnum = MainnetEnvironmentEnum

// ConfigDir directory holding the per-environment YAML files
var ConfigDir = "./conf"

func (e EnvironmentEnum) String() string {
	switch e {
	case LocalEnvironmentEnum:
		return "loc"
	case MainnetEnvironmentEnum:
		return "mainnet"
	case TestnetEnvironmentEnum:
		return "testnet"
	case ExampleEnvironmentEnum:
		return "example"
	default:
		return "unknown"
	}
}

// ParseEnvironment maps the -env flag value to an environment
func ParseEnvironment(env string) (EnvironmentEnum, error) {
	switch env {
	case "loc":
		return LocalEnvironmentEnum, nil
	case "mainnet":
		return MainnetEnvironmentEnum, nil
	case "testnet":
		return TestnetEnvironmentEnum, nil
	case "example":
		return ExampleEnvironmentEnum, nil
	default:
		return MainnetEnvironmentEnum, fmt.Errorf("unknown environment: %s", env)
	}
}

// GetYaml returns the config file path for the current environment
func GetYaml() string {
	return fmt.Sprintf("%s/conf_%s.yaml", ConfigDir, SystemEnvironmentEnum)
}
