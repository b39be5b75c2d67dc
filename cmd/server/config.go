package main

type Config struct {
	BadgerFilepath       string `env:"BADGER_FILEPATH,required=true"`
	JWTSecret            string `env:"JWT_SECRET,required=true"`
	ConnectionBufferSize int    `env:"CONNECTION_BUFFER_SIZE,required=true"`
	LogLevel             string `env:"LOG_LEVEL,required=true"`
	Host                 string `env:"HOST,default=localhost"`
	Port                 int    `env:"PORT,default=8080"`
}
