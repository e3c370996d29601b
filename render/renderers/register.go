package renderers

import "github.com/lixenwraith/birthday-surprise/render"

// RegisterAll registers every scene renderer on the orchestrator
// seed drives the placement of randomized decorations
func RegisterAll(o *render.RenderOrchestrator, layout *render.Layout, seed int64) {
	o.Register(NewBackgroundRenderer(seed), render.PriorityBackground)
	o.Register(NewBalloonsRenderer(seed+1), render.PriorityBalloons)
	o.Register(NewCakeRenderer(), render.PriorityCake)
	o.Register(NewWindRenderer(seed+2), render.PriorityWind)
	o.Register(NewFloatersRenderer(seed+3), render.PriorityFloaters)
	o.Register(NewFireworksRenderer(seed+4), render.PriorityFireworks)
	o.Register(NewConfettiRenderer(seed+5), render.PriorityConfetti)
	o.Register(NewCaptionRenderer(layout), render.PriorityUI)
}
