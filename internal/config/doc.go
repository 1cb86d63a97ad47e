// Package config defines the application configuration structure and
// loading. Configuration is read once at process start and passed into
// component constructors by value; core logic never reads ambient global
// state.
package config
