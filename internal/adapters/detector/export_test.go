package detector

// Classify exposes classify for tests.
var Classify = classify
