package glob

// ParseNegate exposes parseNegate for tests.
var ParseNegate = parseNegate
