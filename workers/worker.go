package workers

// set by the HTTP worker on shutdown so background workers exit
var WorkerShutdown = false
