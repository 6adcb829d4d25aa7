package notifications

import "fmt"

func verificationBody(name, verificationURL string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 500px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 5px;">
    <h2 style="color: #333;">Hello %s,</h2>
    <p style="color: #666;">Please verify your email address by clicking the button below:</p>
    <div style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background: #667eea; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block;">Verify Email</a>
    </div>
    <p style="color: #999; font-size: 12px;">Or copy this link: %s</p>
    <p style="color: #999; font-size: 12px;">This link expires in 24 hours.</p>
</div>`, name, verificationURL, verificationURL)
}

func otpBody(name, code string) string {
	greeting := "Hello,"
	if name != "" {
		greeting = fmt.Sprintf("Hello %s,", name)
	}
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 400px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 5px;">
    <h2 style="color: #333;">%s</h2>
    <p style="color: #666;">Your OTP code is:</p>
    <div style="background: #f5f5f5; padding: 15px; text-align: center; font-size: 32px; font-weight: bold; letter-spacing: 5px; border-radius: 5px;">
        %s
    </div>
    <p style="color: #999; font-size: 12px; margin-top: 20px;">This code expires in 10 minutes.</p>
</div>`, greeting, code)
}

func welcomeBody(name string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 500px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 5px;">
    <h2 style="color: #333;">Welcome %s!</h2>
    <p style="color: #666;">Thank you for registering. Please verify your email to get started.</p>
</div>`, name)
}

func emailChangeBody(name, verificationURL string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 500px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 5px;">
    <h2 style="color: #333;">Hello %s,</h2>
    <p style="color: #666;">Please verify your new email address by clicking the button below:</p>
    <div style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background: #667eea; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block;">Verify New Email</a>
    </div>
    <p style="color: #999; font-size: 12px;">This link expires in 24 hours.</p>
</div>`, name, verificationURL)
}
