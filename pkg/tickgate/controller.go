package tickgate

// Bounds for the tuned parameters. The controller never steps outside
// these regardless of configured step sizes.
const (
	minMaxPerTick = 8
	maxMaxPerTick = 200

	minCooldownTicks = 1
	maxCooldownTicks = 10
)

// controller holds the two dynamically tuned admission parameters.
// It is a bang-bang integral controller: each frame it looks at that
// frame's measured duration only (no smoothing or averaging) and nudges
// both parameters one step toward stricter or more permissive. Sustained
// overload walks the quota down to its floor; sustained headroom walks it
// back up to its ceiling.
type controller struct {
	maxPerTick    int
	cooldownTicks int
}

// reset initializes the tuned parameters from the configured step sizes.
func (c *controller) reset(quotaStep, cooldownStep int) {
	c.maxPerTick = quotaStep * 10
	c.cooldownTicks = cooldownStep * 2
}

// observe applies one controller step for a frame that took elapsedMs
// against a budget of targetMs.
func (c *controller) observe(elapsedMs, targetMs int64, quotaStep, cooldownStep int) {
	if elapsedMs > targetMs {
		// Over budget: admit fewer entities, space repeats further apart.
		c.maxPerTick = max(minMaxPerTick, c.maxPerTick-quotaStep)
		c.cooldownTicks = min(maxCooldownTicks, c.cooldownTicks+cooldownStep)
	} else {
		c.maxPerTick = min(maxMaxPerTick, c.maxPerTick+quotaStep)
		c.cooldownTicks = max(minCooldownTicks, c.cooldownTicks-cooldownStep)
	}
}
