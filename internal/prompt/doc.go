// Package prompt collects the project name and feature choices for a run.
// Questions are asked through a Prompter so the line-based and TUI front ends
// share the same question sequence.
package prompt
