package app

// Log messages written while the application starts and stops. Keeping them
// in one place keeps the wording of the log file consistent.
const (
	MsgConfigError       = "error getting configs"
	MsgStorageError      = "error creating storages"
	MsgFormError         = "error building form"
	MsgInitError         = "init app error"
	MsgRunError          = "app run error"
	MsgStarted           = "formguard started"
	MsgStopped           = "formguard stopped"
	MsgCloseStorageError = "error closing storages"
)
