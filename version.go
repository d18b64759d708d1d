package replace

// Version is the module's release version, printed by `nestplace version`.
const Version = "0.1.0"
