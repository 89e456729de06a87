package identity

// genericUniversity labels students generated without a university.
const genericUniversity = "Generic University"

// maleFirstNames and femaleFirstNames are disjoint.
var maleFirstNames = []string{
	"James", "John", "Robert", "Michael", "William", "David", "Richard", "Joseph",
	"Thomas", "Christopher", "Daniel", "Matthew", "Anthony", "Mark", "Donald", "Steven",
	"Andrew", "Kenneth", "Joshua", "Kevin", "Brian", "George", "Timothy", "Ronald",
	"Edward", "Jason", "Jeffrey", "Ryan", "Jacob", "Gary", "Nicholas", "Eric",
	"Jonathan", "Stephen", "Larry", "Justin", "Scott", "Brandon", "Benjamin", "Samuel",
	"Frank", "Gregory", "Raymond", "Alexander", "Patrick", "Jack", "Dennis", "Jerry",
	"Tyler", "Aaron", "Jose", "Adam", "Nathan", "Henry", "Douglas", "Zachary",
	"Peter", "Kyle", "Walter", "Ethan", "Jeremy", "Harold", "Keith", "Christian",
	"Roger", "Noah", "Gerald", "Carl", "Terry", "Sean", "Austin", "Arthur",
	"Lawrence", "Jesse", "Dylan", "Jordan", "Bryan", "Billy", "Joe", "Bruce",
	"Albert", "Willie", "Gabriel", "Logan", "Alan", "Juan", "Wayne", "Elijah",
	"Randy", "Roy", "Vincent", "Ralph", "Eugene", "Russell", "Bobby", "Mason",
	"Philip", "Louis", "Caleb", "Hunter", "Liam", "Owen", "Connor", "Luke",
}

var femaleFirstNames = []string{
	"Mary", "Patricia", "Jennifer", "Linda", "Barbara", "Elizabeth", "Susan", "Jessica",
	"Sarah", "Karen", "Lisa", "Nancy", "Betty", "Margaret", "Sandra", "Ashley",
	"Kimberly", "Emily", "Donna", "Michelle", "Carol", "Amanda", "Dorothy", "Melissa",
	"Deborah", "Stephanie", "Rebecca", "Sharon", "Laura", "Cynthia", "Kathleen", "Amy",
	"Angela", "Shirley", "Anna", "Brenda", "Pamela", "Emma", "Nicole", "Helen",
	"Samantha", "Katherine", "Christine", "Debra", "Rachel", "Carolyn", "Janet", "Catherine",
	"Maria", "Heather", "Diane", "Ruth", "Julie", "Olivia", "Joyce", "Virginia",
	"Victoria", "Kelly", "Lauren", "Christina", "Joan", "Evelyn", "Judith", "Megan",
	"Andrea", "Cheryl", "Hannah", "Jacqueline", "Martha", "Gloria", "Teresa", "Ann",
	"Sara", "Madison", "Frances", "Kathryn", "Janice", "Jean", "Abigail", "Sophia",
	"Brittany", "Isabella", "Charlotte", "Natalie", "Grace", "Alice", "Doris", "Julia",
	"Marie", "Diana", "Judy", "Danielle", "Beverly", "Denise", "Amber", "Theresa",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Thompson", "White", "Harris",
	"Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen",
	"King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green",
	"Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell", "Carter",
	"Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz", "Parker", "Cruz",
	"Edwards", "Collins", "Reyes", "Stewart", "Morris", "Morales", "Murphy", "Cook",
	"Rogers", "Gutierrez", "Ortiz", "Morgan", "Cooper", "Peterson", "Bailey", "Reed",
	"Kelly", "Howard", "Ramos", "Kim", "Cox", "Ward", "Richardson", "Watson",
	"Brooks", "Chavez", "Wood", "James", "Bennett", "Gray", "Mendoza", "Ruiz",
	"Hughes", "Price", "Alvarez", "Castillo", "Sanders", "Patel", "Myers", "Long",
	"Ross", "Foster", "Jimenez", "Powell", "Jenkins", "Perry", "Russell",
}

// genericDomains are used when no university name is given.
var genericDomains = []string{
	"ucla.edu", "berkeley.edu", "stanford.edu", "mit.edu",
	"harvard.edu", "cornell.edu", "columbia.edu", "nyu.edu",
	"umich.edu", "usc.edu", "duke.edu", "upenn.edu",
}
