package config

type config struct {
	Server   server   `yaml:"server" mapstructure:"server"`
	Mysql    mysql    `yaml:"mysql" mapstructure:"mysql"`
	Redis    redis    `yaml:"redis" mapstructure:"redis"`
	RabbitMq rabbitmq `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Minio    minioCfg `yaml:"minio" mapstructure:"minio"`
	Jwt      jwtCfg   `yaml:"jwt" mapstructure:"jwt"`
}

type server struct {
	Addr string `yaml:"addr"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type minioCfg struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
	PublicURL string `yaml:"public_url"`
}

type jwtCfg struct {
	Secret string `yaml:"secret"`
}
