package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
)

func TestResolveService(t *testing.T) {
	tests := []struct {
		service  domain.ServiceID
		subSteps int
		seed     string
	}{
		{service: domain.ServiceDaycare, subSteps: 4, seed: "full_day"},
		{service: domain.ServiceBoarding, subSteps: 4, seed: "standard"},
		{service: domain.ServiceGrooming, subSteps: 0, seed: ""},
		{service: domain.ServiceTraining, subSteps: 0, seed: ""},
		{service: domain.ServiceEvaluation, subSteps: 0, seed: ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.service), func(t *testing.T) {
			cfg := ResolveService(tt.service)
			assert.Len(t, cfg.SubSteps, tt.subSteps)
			assert.Equal(t, tt.seed, cfg.DefaultServiceType)
			for i, sub := range cfg.SubSteps {
				assert.Equal(t, i, sub.Index)
				assert.NotEmpty(t, sub.Title)
			}
		})
	}
}

func TestResolveService_FreshValue(t *testing.T) {
	first := ResolveService(domain.ServiceDaycare)
	first.SubSteps[0].Title = "changed"

	assert.NotEqual(t, "changed", ResolveService(domain.ServiceDaycare).SubSteps[0].Title)
}
