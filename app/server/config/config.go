package config

// 存储后端
const (
	StoreBackendDB   = "db"   // 使用关系型数据库（通过 gorm ）
	StoreBackendFile = "file" // 使用 JSON 平面文件
)

// 数据库驱动
const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

// 图片文件存储后端
const (
	AssetBackendDisk  = "disk"  // 本地目录
	AssetBackendMinIO = "minio" // S3 兼容的对象存储
)

type Config struct {
	System struct {
		IsProd                bool   `yaml:"is_prod"`    // 是否为生产环境
		Listen                string `yaml:"listen"`     // 监听地址
		PublicDir             string `yaml:"public_dir"` // 静态页面（首页与管理面板）所在目录
		RedisConnectionString string `yaml:"redis_conn"` // Redis 数据库的连接字符串，留空则不启用令牌吊销
	} `yaml:"system"`
	Storage struct {
		Backend            string `yaml:"backend"`   // 内容存储后端： db 或 file
		DBDriver           string `yaml:"db_driver"` // 数据库驱动： postgres 或 sqlite
		DBConnectionString string `yaml:"db_conn"`   // 数据库的连接字符串
		DataDir            string `yaml:"data_dir"`  // JSON 文件存储目录

		AssetBackend string `yaml:"asset_backend"` // 图片存储后端： disk 或 minio
		UploadDir    string `yaml:"upload_dir"`    // 本地图片目录
		S3Endpoint   string `yaml:"s3_endpoint"`
		S3AccessKey  string `yaml:"s3_access_key"`
		S3SecretKey  string `yaml:"s3_secret_key"`
		S3Bucket     string `yaml:"s3_bucket"`
	} `yaml:"storage"`
	Security struct {
		SignatureSecretKey string `yaml:"signature_secret_key"` // 签名密钥，用于产生 JWT ，更新会导致旧有会话失效
	} `yaml:"security"`
	Admin struct {
		Username string `yaml:"username"` // 初始管理员用户名
		Password string `yaml:"password"` // 初始管理员密码，只在首次创建时使用
	} `yaml:"admin"`
}
