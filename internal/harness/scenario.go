package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario is a scripted storefront session with expectations.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Setup steps run first and must all succeed.
	Setup []Step `yaml:"setup,omitempty"`

	// Flow is the main sequence of steps.
	Flow []Step `yaml:"flow"`

	// Assertions are checked against the final state.
	Assertions []Assertion `yaml:"assertions"`
}

// Step is one storefront operation.
type Step struct {
	// Op names the operation (register, login, add, place_order, ...).
	Op string `yaml:"op"`

	// Args are the operation arguments.
	Args map[string]any `yaml:"args,omitempty"`

	// Expect names the error the step must fail with. nil means success.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause holds the expected outcome of a step.
type ExpectClause struct {
	// Error is the expected error code, e.g. "DUPLICATE_EMAIL".
	Error string `yaml:"error"`
}

// Assertion checks one property of the final state.
type Assertion struct {
	Type     string  `yaml:"type"`
	Name     string  `yaml:"name,omitempty"`
	Email    string  `yaml:"email,omitempty"`
	Status   string  `yaml:"status,omitempty"`
	Count    int     `yaml:"count,omitempty"`
	Quantity int     `yaml:"quantity,omitempty"`
	Total    float64 `yaml:"total,omitempty"`
}

// Operation names.
const (
	OpRegister   = "register"
	OpLogin      = "login"
	OpLogout     = "logout"
	OpAdd        = "add"
	OpAddMenu    = "add_menu"
	OpRemove     = "remove"
	OpQuantity   = "quantity"
	OpPlaceOrder = "place_order"
	OpReload     = "reload"
)

// Assertion type constants.
const (
	AssertCartLines   = "cart_lines"
	AssertCartItem    = "cart_item"
	AssertItemCount   = "item_count"
	AssertCartTotal   = "cart_total"
	AssertOrderCount  = "order_count"
	AssertLastOrder   = "last_order"
	AssertUserCount   = "user_count"
	AssertCurrentUser = "current_user"
)

var knownOps = map[string]bool{
	OpRegister: true, OpLogin: true, OpLogout: true, OpAdd: true, OpAddMenu: true,
	OpRemove: true, OpQuantity: true, OpPlaceOrder: true, OpReload: true,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates a scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// LoadDir loads every *.yaml scenario in dir, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenarios found in %s", dir)
	}
	sort.Strings(paths)

	out := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		out = append(out, s)
	}
	return out, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Flow) == 0 {
		return fmt.Errorf("flow list is required and must be non-empty")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, step := range s.Setup {
		if err := validateStep(fmt.Sprintf("setup[%d]", i), step); err != nil {
			return err
		}
		if step.Expect != nil {
			return fmt.Errorf("setup[%d]: setup steps cannot expect an error", i)
		}
	}
	for i, step := range s.Flow {
		if err := validateStep(fmt.Sprintf("flow[%d]", i), step); err != nil {
			return err
		}
	}
	for i, a := range s.Assertions {
		if err := validateAssertion(i, a); err != nil {
			return err
		}
	}
	return nil
}

func validateStep(where string, step Step) error {
	if step.Op == "" {
		return fmt.Errorf("%s: op is required", where)
	}
	if !knownOps[step.Op] {
		return fmt.Errorf("%s: unknown op %q", where, step.Op)
	}
	if step.Expect != nil && step.Expect.Error == "" {
		return fmt.Errorf("%s.expect: error is required", where)
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertCartItem:
		if a.Name == "" {
			return fmt.Errorf("assertions[%d]: name is required for cart_item", index)
		}
	case AssertLastOrder:
		if a.Status == "" {
			return fmt.Errorf("assertions[%d]: status is required for last_order", index)
		}
	case AssertCartLines, AssertItemCount, AssertCartTotal, AssertOrderCount, AssertUserCount, AssertCurrentUser:
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	if a.Count < 0 {
		return fmt.Errorf("assertions[%d]: count must be non-negative", index)
	}
	return nil
}
