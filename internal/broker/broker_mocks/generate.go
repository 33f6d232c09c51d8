package broker_mocks

//go:generate mockgen -source=../backend.go -destination=broker_mocks.go -package=broker_mocks

// This file contains the go:generate directive to generate mocks for the
// execution backend interface. To regenerate the mocks, run:
//   go generate ./internal/broker/broker_mocks
