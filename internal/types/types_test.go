package types

import "testing"

func TestEnvironmentIsValid(t *testing.T) {
	tests := []struct {
		env  Environment
		want bool
	}{
		{EnvPE, true},
		{EnvIB, true},
		{"", false},
		{"pe", false},
		{"QA", false},
	}
	for _, tt := range tests {
		if got := tt.env.IsValid(); got != tt.want {
			t.Errorf("Environment(%q).IsValid() = %v, want %v", tt.env, got, tt.want)
		}
	}
}

func TestProblemValidate(t *testing.T) {
	tests := []struct {
		name    string
		problem Problem
		wantErr bool
	}{
		{"valid", Problem{ProblemID: "P-1", Environment: EnvPE}, false},
		{"missing id", Problem{Environment: EnvPE}, true},
		{"bad environment", Problem{ProblemID: "P-1", Environment: "QA"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.problem.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
