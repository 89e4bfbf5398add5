package smtp

// Default email templates, used when no file override is configured.

const defaultVerificationTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Verify Your Email</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #4CAF50;">Welcome to Habit Tracker!</h2>
        <p>Hi {{.Username}},</p>
        <p>Thank you for signing up! Please verify your email address by clicking the button below:</p>
        <div style="text-align: center; margin: 30px 0;">
            <a href="{{.VerificationURL}}" style="background-color: #4CAF50; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block;">Verify Email</a>
        </div>
        <p>Or copy and paste this link into your browser:</p>
        <p style="word-break: break-all; color: #666;">{{.VerificationURL}}</p>
        <p>If you didn't create an account, please ignore this email.</p>
        <hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">
        <p style="color: #999; font-size: 12px;">This is an automated email, please do not reply.</p>
    </div>
</body>
</html>
`

const defaultStarterNudgeTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>The First Step is Always the Hardest</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #2196F3;">The First Step is Always the Hardest</h2>
        <p style="color: #888; font-style: italic;">"A journey of a thousand miles begins with a single step."</p>
        <p>Hi {{.Username}},</p>
        <p>You joined <strong>Habit Tracker</strong> to build a better version of yourself, but your dashboard is still empty.</p>
        <p>Start tonight:</p>
        <ul style="color: #666; line-height: 1.8;">
            <li>Create just ONE habit. Keep it simple.</li>
            <li>Example: "Drink 2L Water" or "Read 5 Pages".</li>
            <li>Action breeds confidence. Start now.</li>
        </ul>
        <div style="text-align: center; margin: 30px 0;">
            <a href="{{.FrontendURL}}" style="background-color: #2196F3; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block;">Create My First Habit</a>
        </div>
        <hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">
        <p style="color: #999; font-size: 12px;">This is an automated email, please do not reply.</p>
    </div>
</body>
</html>
`

const defaultInactivityTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Discipline is Choice</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #FF5722;">Discipline is Choice</h2>
        <p style="color: #888; font-style: italic;">"Motivation gets you started; discipline keeps you going."</p>
        <p>Hi {{.Username}},</p>
        <p>You haven't logged any progress for <strong>2 days</strong>. Streaks are easy to break but hard to build.</p>
        <ul style="color: #666; line-height: 1.8;">
            <li>Don't let your current streaks expire.</li>
            <li>It takes 1% better every day to reach your peak.</li>
            <li>Success is built on the days you don't feel like it.</li>
        </ul>
        <div style="text-align: center; margin: 30px 0;">
            <a href="{{.FrontendURL}}" style="background-color: #FF5722; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block;">Resume My Progress</a>
        </div>
        <hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">
        <p style="color: #999; font-size: 12px;">This is an automated email, please do not reply.</p>
    </div>
</body>
</html>
`

const defaultMonthlyReportTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Monthly Review</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #4CAF50;">Monthly Review</h2>
        <p style="color: #888; text-transform: uppercase; font-size: 12px;">{{.MonthLabel}} &bull; Performance Report</p>
        <p>Hi {{.Username}},</p>
        <p>Congratulations on finishing another month of discipline! Attached to this email you will find your <strong>Monthly Ledger</strong>.</p>
        <p>Reviewing your past data is the best way to identify patterns and strengthen your consistency for the upcoming month.</p>
        <hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">
        <p style="color: #999; font-size: 12px;">This is an automated monthly summary from your Habit Tracker.</p>
    </div>
</body>
</html>
`
