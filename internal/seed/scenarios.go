package seed

import "github.com/spec-kit/servicedesk-seeder/internal/domain"

// Scenario is a realistic ticket text paired with the category it
// describes. Nominal severity lives in the catalog ordering only; the
// generated priority always comes from the configured distribution.
type Scenario struct {
	Title       string
	Description string
	Category    domain.TicketCategory
}

// TicketScenarios is the literal catalog of realistic support tickets,
// ordered roughly from outages down to nice-to-haves.
var TicketScenarios = []Scenario{
	{
		Title:       "Complete email server outage - all users affected",
		Description: "The main email server has crashed and no users can send or receive emails company-wide. This is affecting all business operations and client communications. Error logs show database connection failures.",
		Category:    domain.CategoryEmail,
	},
	{
		Title:       "Network infrastructure failure - entire building offline",
		Description: "The main network switch has failed causing complete internet and internal network outage for the entire building. All work has stopped and we cannot access any cloud services or internal systems.",
		Category:    domain.CategoryNetwork,
	},
	{
		Title:       "Security breach detected - immediate action required",
		Description: "Our security monitoring system has detected unauthorized access attempts and potential data exfiltration. Multiple failed login attempts from foreign IP addresses. Need immediate security assessment and containment.",
		Category:    domain.CategoryOther,
	},
	{
		Title:       "CEO laptop completely non-functional before board meeting",
		Description: "The CEO's laptop won't boot up and shows a blue screen error. There's an important board meeting in 2 hours and all presentation materials are on this laptop. Need immediate replacement or data recovery.",
		Category:    domain.CategoryHardware,
	},
	{
		Title:       "Sales CRM system down during quarter-end",
		Description: "Salesforce CRM is completely inaccessible and showing database errors. This is the last week of the quarter and the sales team cannot access leads, update opportunities, or generate reports.",
		Category:    domain.CategorySoftware,
	},
	{
		Title:       "VPN server overloaded - remote workers cannot connect",
		Description: "The VPN server is at capacity and new connections are being rejected. 60% of our workforce is remote today and cannot access internal systems. Connection timeouts and authentication failures reported.",
		Category:    domain.CategoryNetwork,
	},
	{
		Title:       "Payroll system error before payday",
		Description: "The payroll processing system is showing calculation errors and won't generate paychecks. Payday is tomorrow and HR cannot process payments for 200+ employees. Database integrity issues suspected.",
		Category:    domain.CategorySoftware,
	},
	{
		Title:       "Main file server crashed - project data inaccessible",
		Description: "The primary file server hosting all project documents has crashed with disk errors. Multiple teams cannot access critical project files needed for client deliverables due today.",
		Category:    domain.CategoryHardware,
	},
	{
		Title:       "Email security filter blocking legitimate messages",
		Description: "The new email security system is incorrectly flagging and blocking important client emails and internal communications. Business operations are being severely impacted.",
		Category:    domain.CategoryEmail,
	},
	{
		Title:       "Database server running out of disk space",
		Description: "The main database server is at 95% disk capacity and applications are starting to fail. Transaction logs are growing rapidly and we risk complete system failure within hours.",
		Category:    domain.CategoryOther,
	},
	{
		Title:       "Backup system failure discovered during restore test",
		Description: "During routine backup testing, we discovered that backups have been failing for the past 2 weeks. We have no recent backup data and are at risk of major data loss.",
		Category:    domain.CategoryOther,
	},
	{
		Title:       "Active Directory server authentication issues",
		Description: "Users cannot log into their computers or access network resources. Active Directory is showing replication errors and authentication services are intermittent.",
		Category:    domain.CategoryAccess,
	},
	{
		Title:       "Laptop screen flickering intermittently during presentations",
		Description: "My laptop screen flickers randomly, especially during PowerPoint presentations. It's embarrassing during client meetings and affects productivity. The issue started after the latest Windows update.",
		Category:    domain.CategoryHardware,
	},
	{
		Title:       "Microsoft Excel crashes when opening large spreadsheets",
		Description: "Excel consistently crashes when I try to open files larger than 50MB. I work with large datasets for financial analysis and this is significantly impacting my work efficiency.",
		Category:    domain.CategorySoftware,
	},
	{
		Title:       "WiFi connection drops every 30 minutes in conference room",
		Description: "The WiFi in Conference Room B keeps disconnecting every 30 minutes during meetings. Participants have to reconnect frequently, disrupting video calls and presentations.",
		Category:    domain.CategoryNetwork,
	},
	{
		Title:       "Outlook email synchronization delays with mobile device",
		Description: "Emails take 15-20 minutes to sync between my desktop Outlook and iPhone. This delay is causing me to miss time-sensitive communications and client responses.",
		Category:    domain.CategoryEmail,
	},
	{
		Title:       "Request access to new project SharePoint site",
		Description: "I've been assigned to Project Phoenix and need read/write access to the SharePoint site. My manager confirmed I should have access to all project folders except the confidential budget section.",
		Category:    domain.CategoryAccess,
	},
	{
		Title:       "Printer queue stuck with multiple jobs pending",
		Description: "The 3rd floor printer has 15 jobs stuck in the queue and won't print anything new. The printer shows as online but documents just sit in the queue indefinitely.",
		Category:    domain.CategoryHardware,
	},
	{
		Title:       "Teams application freezes during screen sharing",
		Description: "Microsoft Teams consistently freezes when I try to share my screen during meetings. Audio continues but video becomes unresponsive, forcing me to restart the application.",
		Category:    domain.CategorySoftware,
	},
	{
		Title:       "VPN connection very slow affecting file transfers",
		Description: "When connected to VPN, file transfer speeds drop to less than 1 Mbps. Uploading documents to cloud storage takes hours instead of minutes, severely impacting remote work productivity.",
		Category:    domain.CategoryNetwork,
	},
	{
		Title:       "Email signature not updating across all devices",
		Description: "I updated my email signature last week but it only shows correctly on my desktop. My mobile phone and tablet still display the old signature, creating inconsistent communications.",
		Category:    domain.CategoryEmail,
	},
	{
		Title:       "Cannot edit shared documents in OneDrive",
		Description: "I can view shared OneDrive documents but cannot edit them even though I have edit permissions. Getting 'Permission denied' errors when trying to save changes to team documents.",
		Category:    domain.CategoryAccess,
	},
	{
		Title:       "Computer running slowly after Windows update",
		Description: "My computer has been extremely slow since the latest Windows update. Applications take 2-3 minutes to open and the system frequently becomes unresponsive during multitasking.",
		Category:    domain.CategorySoftware,
	},
	{
		Title:       "External monitor not detected via USB-C dock",
		Description: "My external monitor stopped working after connecting through the new USB-C dock. The laptop doesn't detect the monitor and I can't extend my display for productivity work.",
		Category:    domain.CategoryHardware,
	},
	{
		Title:       "Internet browser crashes when accessing specific websites",
		Description: "Chrome crashes consistently when I try to access our vendor portal and client management system. Other websites work fine but these critical business sites cause immediate crashes.",
		Category:    domain.CategorySoftware,
	},
	{
		Title:       "Shared network drive mapping fails after computer restart",
		Description: "Every time I restart my computer, the mapped network drives (S: and T: drives) disappear and I have to manually reconnect them. This happens daily and disrupts my workflow.",
		Category:    domain.CategoryNetwork,
	},
	{
		Title:       "Email attachments fail to download in web browser",
		Description: "When using Outlook Web App, email attachments show 'Download failed' errors. This only happens in the browser version - desktop Outlook works fine for the same emails.",
		Category:    domain.CategoryEmail,
	},
	{
		Title:       "Need access to financial reporting system for new role",
		Description: "I've been promoted to Financial Analyst and need access to the SAP financial reporting system. My manager submitted the request but I still cannot log in after 3 days.",
		Category:    domain.CategoryAccess,
	},
	{
		Title:       "Keyboard keys sticking affecting typing speed",
		Description: "Several keys on my keyboard are sticking, particularly the spacebar and Enter key. This is significantly slowing down my typing and causing errors in documents and emails.",
		Category:    domain.CategoryHardware,
	},
	{
		Title:       "Adobe Creative Suite license expired need renewal",
		Description: "My Adobe Creative Suite license expired and I cannot access Photoshop or Illustrator needed for marketing materials. The design team is waiting for assets for the new campaign.",
		Category:    domain.CategorySoftware,
	},
	{
		Title:       "WiFi password not working for guest network",
		Description: "Clients visiting our office cannot connect to the guest WiFi network. The password we provide doesn't work and they cannot access internet for their presentations and demos.",
		Category:    domain.CategoryNetwork,
	},
	{
		Title:       "Spam emails bypassing security filter",
		Description: "I'm receiving 10-15 obvious spam emails daily that are getting past our email security system. These include phishing attempts and malware attachments that pose security risks.",
		Category:    domain.CategoryEmail,
	},
	{
		Title:       "Cannot access HR portal to update personal information",
		Description: "The HR self-service portal shows 'Access Denied' when I try to update my address and emergency contact information. I need to update this for insurance purposes.",
		Category:    domain.CategoryAccess,
	},
	{
		Title:       "Webcam not working for video conferences",
		Description: "My laptop's built-in webcam stopped working and shows up as 'Device not found' in Teams and Zoom. I have important client video calls scheduled and need this resolved quickly.",
		Category:    domain.CategoryHardware,
	},
	{
		Title:       "PowerPoint presentations corrupted after auto-save",
		Description: "Several important PowerPoint presentations have become corrupted after the auto-save feature activated. Files show 'Cannot open' errors and I may have lost hours of work.",
		Category:    domain.CategorySoftware,
	},
	{
		Title:       "Network file transfer speeds extremely slow",
		Description: "Copying files to and from the network server takes 10x longer than usual. A 100MB file that used to transfer in 30 seconds now takes 5+ minutes.",
		Category:    domain.CategoryNetwork,
	},
	{
		Title:       "Email rules not working after system update",
		Description: "All my Outlook email rules stopped working after the recent system update. Emails are no longer being automatically sorted into folders and I'm missing important messages.",
		Category:    domain.CategoryEmail,
	},
	{
		Title:       "Request installation of additional software for productivity",
		Description: "I would like to have Notepad++ and 7-Zip installed on my workstation to improve my development workflow. These are free tools that would help with text editing and file compression tasks.",
		Category:    domain.CategorySoftware,
	},
	{
		Title:       "Mouse scroll wheel occasionally unresponsive",
		Description: "The scroll wheel on my mouse sometimes doesn't respond and I have to click and drag the scrollbar instead. It's a minor inconvenience but affects efficiency when reviewing long documents.",
		Category:    domain.CategoryHardware,
	},
	{
		Title:       "Desktop wallpaper resets to default after restart",
		Description: "My custom desktop wallpaper keeps reverting to the default Windows background after each restart. It's not critical but I'd like to keep my personalized workspace setup.",
		Category:    domain.CategorySoftware,
	},
	{
		Title:       "Request for ergonomic keyboard for comfort",
		Description: "I've been experiencing some wrist discomfort during long typing sessions. Could I get an ergonomic keyboard to help prevent repetitive strain injury and improve comfort?",
		Category:    domain.CategoryHardware,
	},
	{
		Title:       "WiFi signal weak in corner office location",
		Description: "The WiFi signal in my corner office is weaker than other locations. Internet works but is slower for video calls and large file downloads. Not urgent but would improve productivity.",
		Category:    domain.CategoryNetwork,
	},
	{
		Title:       "Email notification sound too quiet to hear",
		Description: "The email notification sound is very quiet and I often miss new messages. Could the volume be increased or a different notification sound be configured?",
		Category:    domain.CategoryEmail,
	},
	{
		Title:       "Request access to optional training portal",
		Description: "I'd like access to the LinkedIn Learning portal for professional development. It's not required for my current role but would help with skill enhancement and career growth.",
		Category:    domain.CategoryAccess,
	},
	{
		Title:       "Computer fan noise slightly louder than usual",
		Description: "My computer's fan seems to run a bit louder than before, especially during intensive tasks. It's not affecting performance but the noise is somewhat distracting in the quiet office.",
		Category:    domain.CategoryHardware,
	},
	{
		Title:       "Suggestion to update company screensaver",
		Description: "The current company screensaver shows outdated branding and old contact information. It would be nice to update it with current logos and messaging for a more professional appearance.",
		Category:    domain.CategorySoftware,
	},
	{
		Title:       "Request for dual monitor setup for better workflow",
		Description: "I currently work with a single monitor but would be more productive with a dual monitor setup. This would help with multitasking between applications and improve overall efficiency.",
		Category:    domain.CategoryHardware,
	},
	{
		Title:       "Conference room projector intermittently losing signal",
		Description: "The projector in the main conference room loses its input signal several times per meeting. Presenters have to unplug and reconnect the HDMI cable to restore the picture.",
		Category:    domain.CategoryHardware,
	},
}

// tailTemplates synthesize ticket text once the scenario catalog has no
// unused entry for a drawn category.
var tailTemplates = map[domain.TicketCategory]string{
	domain.CategorySoftware: "Software installation request for team productivity",
	domain.CategoryHardware: "Hardware replacement needed for aging equipment",
	domain.CategoryNetwork:  "Network connectivity issues in specific office area",
	domain.CategoryEmail:    "Email configuration problem for new employee",
	domain.CategoryAccess:   "Access request for departmental shared resources",
	domain.CategoryOther:    "General IT assistance request",
}

// Departments is the pool ticket requesters are drawn from.
var Departments = []string{
	"Engineering", "Marketing", "Sales", "HR", "Finance", "Operations",
	"Customer Support", "IT", "Legal", "Product Management", "Executive",
	"Quality Assurance", "Business Development", "Research & Development",
}

// UserNames is the requester name pool; emails derive from these.
var UserNames = []string{
	"Sarah Johnson", "Michael Chen", "Emily Davis", "David Wilson", "Lisa Anderson",
	"Robert Garcia", "Jennifer Martinez", "William Brown", "Jessica Taylor", "James Lee",
	"Amanda White", "Christopher Harris", "Michelle Clark", "Daniel Lewis", "Rebecca Walker",
	"Kevin Hall", "Laura Allen", "Steven Young", "Karen King", "Thomas Wright",
	"Nancy Lopez", "Mark Hill", "Sandra Scott", "Andrew Green", "Rachel Adams",
	"Brian Miller", "Ashley Moore", "Ryan Taylor", "Stephanie Wilson", "Justin Clark",
	"Melissa Rodriguez", "Jonathan Davis", "Christina Martinez", "Matthew Anderson",
	"Samantha Thompson", "Nicholas White", "Kimberly Jackson", "Anthony Brown",
	"Elizabeth Johnson", "Joshua Garcia", "Heather Williams", "Alexander Jones",
	"Megan Smith", "Tyler Davis", "Brittany Miller", "Zachary Wilson", "Danielle Moore",
	"Brandon Taylor", "Amber Anderson", "Jordan Thomas", "Kayla Jackson",
}

// Resolutions is the pool of closing notes for resolved/closed tickets.
var Resolutions = []string{
	"Issue resolved by restarting the service and updating configuration settings.",
	"Problem fixed by reinstalling the application and clearing user profile cache.",
	"Resolved by replacing faulty hardware component and testing functionality.",
	"Fixed by updating network drivers and adjusting firewall settings.",
	"Issue resolved through user training and process documentation update.",
	"Problem solved by applying security patches and system updates.",
	"Resolved by reconfiguring email client settings and testing connectivity.",
	"Fixed by clearing browser cache and updating application to latest version.",
	"Issue resolved by adjusting user permissions and access controls.",
	"Problem fixed by optimizing system performance and removing unnecessary software.",
}

// DefaultAgents is the fixed support pool with category specializations.
func DefaultAgents() []domain.Agent {
	return []domain.Agent{
		{Name: "Sarah Wilson", Skills: []domain.TicketCategory{domain.CategoryNetwork, domain.CategoryHardware, domain.CategoryOther}},
		{Name: "Mike Chen", Skills: []domain.TicketCategory{domain.CategorySoftware, domain.CategoryEmail, domain.CategoryAccess}},
		{Name: "Emma Rodriguez", Skills: []domain.TicketCategory{domain.CategoryAccess, domain.CategoryOther}},
		{Name: "David Kim", Skills: []domain.TicketCategory{domain.CategoryHardware, domain.CategorySoftware, domain.CategoryNetwork}},
		{Name: "Lisa Anderson", Skills: []domain.TicketCategory{domain.CategoryEmail, domain.CategorySoftware, domain.CategoryOther}},
		{Name: "Alex Thompson", Skills: []domain.TicketCategory{domain.CategoryNetwork, domain.CategoryHardware}},
	}
}
