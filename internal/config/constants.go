package config

const AppName = "blockdoc"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "blockdoc.log"

const DefaultHistoryCapacity = 100
const DefaultInitialIndex = 1.0
const SystemClipboard = true
