package ports

// ConfigFileFinder defines the contract for locating the configuration file.
type ConfigFileFinder interface {
	Find() (string, error)
}
