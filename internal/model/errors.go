package model

import "fmt"

// DimensionError reports a feature vector whose length disagrees with the
// classifier's input dimensionality. It indicates the feature-space artifact
// is out of sync with the model artifact; retrying with the same inputs
// reproduces it, so callers should surface it rather than retry.
type DimensionError struct {
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("feature vector has %d dimensions, classifier expects %d", e.Got, e.Want)
}

// ArtifactError reports a missing or corrupt trained artifact. Fatal at
// startup: a process that cannot load its artifacts must not serve traffic.
type ArtifactError struct {
	Path string
	Err  error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("load artifact %s: %v", e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error { return e.Err }
