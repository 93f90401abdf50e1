package mail

type CouponEmailData struct {
	Code    string
	Percent int
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	FromName string
}
